package player

import (
	"slices"
	"strings"
)

const (
	// MinGrade is the lowest supported school grade (pre-school).
	MinGrade = 0
	// MaxGrade is the highest supported school grade.
	MaxGrade = 5
)

// Player holds a learner profile and their progress.
type Player struct {
	Name   string
	Grade  int
	Points int

	// Avatar is the current avatar identifier. Always a member of Unlocked
	// once the player has been set up.
	Avatar string

	// Unlocked lists unlocked avatars in unlock order, base avatars first.
	Unlocked []string

	// Language is a BCP 47 tag such as "en" or "sv-SE". Empty means the
	// system default.
	Language string

	// Sessions is the append-only history of finished quizzes.
	Sessions []SessionStat
}

// ClampGrade limits grade to [MinGrade, MaxGrade].
func ClampGrade(grade int) int {
	return min(max(grade, MinGrade), MaxGrade)
}

// Setup (re)initializes the profile in place. The unlocked set is seeded
// with the base avatars on first use and is never shrunk afterwards.
// The requested avatar is adopted only if it is already unlocked;
// otherwise the first unlocked avatar is used.
func (p *Player) Setup(name string, grade int, avatar string) {
	p.Name = strings.TrimSpace(name)
	p.Grade = ClampGrade(grade)
	p.ensureBaseAvatars()

	if avatar = strings.TrimSpace(avatar); avatar != "" && p.IsUnlocked(avatar) {
		p.Avatar = avatar
	} else {
		p.Avatar = p.Unlocked[0]
	}
}

// Award adds points and returns the avatars unlocked by this award, in
// ascending threshold order. Non-positive amounts are ignored.
func (p *Player) Award(points int) []string {
	if points <= 0 {
		return nil
	}
	p.Points += points

	var unlocked []string
	for _, u := range Unlockables {
		if p.Points >= u.Points && !p.IsUnlocked(u.Avatar) {
			p.Unlocked = append(p.Unlocked, u.Avatar)
			unlocked = append(unlocked, u.Avatar)
		}
	}
	return unlocked
}

// SelectAvatar switches to an unlocked avatar. Returns false and leaves the
// current avatar untouched if id is not unlocked.
func (p *Player) SelectAvatar(id string) bool {
	if !p.IsUnlocked(id) {
		return false
	}
	p.Avatar = id
	return true
}

// IsUnlocked reports whether the avatar is in the unlocked set.
func (p *Player) IsUnlocked(id string) bool {
	return slices.Contains(p.Unlocked, id)
}

// AllAvatars returns the unlocked avatars, seeding the base set if the
// player has not been set up yet.
func (p *Player) AllAvatars() []string {
	p.ensureBaseAvatars()
	return slices.Clone(p.Unlocked)
}

// Clone returns a deep copy safe to hand to another goroutine.
func (p *Player) Clone() Player {
	c := *p
	c.Unlocked = slices.Clone(p.Unlocked)
	c.Sessions = slices.Clone(p.Sessions)
	return c
}

// AddSession appends a finished quiz to the history.
func (p *Player) AddSession(s SessionStat) {
	p.Sessions = append(p.Sessions, s)
}

// TotalLessons returns the number of questions answered across all sessions.
func (p *Player) TotalLessons() int {
	total := 0
	for _, s := range p.Sessions {
		total += s.TotalQuestions
	}
	return total
}

// TotalCorrect returns the number of correct answers across all sessions.
func (p *Player) TotalCorrect() int {
	total := 0
	for _, s := range p.Sessions {
		total += s.CorrectAnswers
	}
	return total
}

// OverallAccuracy returns the percentage of correct answers, 0 with no data.
func (p *Player) OverallAccuracy() float64 {
	lessons := p.TotalLessons()
	if lessons == 0 {
		return 0
	}
	return float64(p.TotalCorrect()) / float64(lessons) * 100
}

func (p *Player) ensureBaseAvatars() {
	if len(p.Unlocked) == 0 {
		p.Unlocked = append(p.Unlocked, BaseAvatars...)
	}
}
