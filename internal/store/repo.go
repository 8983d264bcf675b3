package store

import (
	"context"
	"time"
)

// DefaultRecentAnswers is the history size returned when no limit is given.
const DefaultRecentAnswers = 100

// Profile is the persisted player profile. Unlocked avatars are not stored;
// they are re-derived from the points on load.
type Profile struct {
	Name     string
	Grade    int
	Points   int
	Avatar   string
	Language string
}

// ProfileRepo manages the single stored player profile.
type ProfileRepo interface {
	// LoadProfile returns the saved profile, or nil if none exists.
	LoadProfile(ctx context.Context) (*Profile, error)

	// SaveProfile creates or replaces the profile.
	SaveProfile(ctx context.Context, p Profile) error
}

// AnswerEventData captures one judged answer.
type AnswerEventData struct {
	SessionID     string
	Category      string
	QuestionText  string
	CorrectAnswer float64
	UserAnswer    float64
	Correct       bool
	Difficulty    int
	StreakBefore  int
	PointsAwarded int
}

// AnswerRecord is a stored answer with its write-time metadata.
type AnswerRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// SessionStatData captures the outcome of one finished quiz.
type SessionStatData struct {
	SessionID      string
	CompletedAt    time.Time
	Category       string
	TotalQuestions int
	CorrectAnswers int
	PointsEarned   int
}

// EventRepo provides append and query access to the answer log and the
// session stats.
type EventRepo interface {
	// AppendAnswer records a judged answer, timestamped at write time.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentAnswers returns up to limit answers, newest first. A limit of
	// zero or less means DefaultRecentAnswers.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error)

	// AppendSessionStat records a finished quiz.
	AppendSessionStat(ctx context.Context, data SessionStatData) error

	// SessionStats returns every recorded quiz, oldest first.
	SessionStats(ctx context.Context) ([]SessionStatData, error)
}
