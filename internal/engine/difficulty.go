package engine

// StreakThreshold returns how many consecutive correct answers raise the
// difficulty by one. Higher grades climb faster.
func StreakThreshold(grade int) int {
	switch {
	case grade <= 1:
		return 3
	case grade <= 3:
		return 2
	default:
		return 1
	}
}

// MaxDifficulty returns the difficulty ceiling for a grade: 6 for grades
// 0-1, 8 for 2-3 and 10 for 4-5.
func MaxDifficulty(grade int) int {
	return 6 + (grade/2)*2
}

// DifficultyDrop returns how far difficulty falls after a wrong answer.
func DifficultyDrop(grade int) int {
	if grade >= 3 {
		return 1
	}
	return 2
}

// BasePoints is awarded for every correct answer.
const BasePoints = 1

// Bonus returns the streak bonus for the streak value after the current
// answer has been counted.
func Bonus(streak int) int {
	switch {
	case streak >= 7:
		return 3
	case streak >= 5:
		return 2
	case streak >= 3:
		return 1
	default:
		return 0
	}
}
