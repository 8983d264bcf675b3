package player

import "time"

// SessionStat records one finished quiz. Immutable once created.
type SessionStat struct {
	CompletedAt    time.Time
	Category       string
	TotalQuestions int
	CorrectAnswers int
	PointsEarned   int
}

// Accuracy returns the percentage of correct answers, 0 for an empty session.
func (s SessionStat) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions) * 100
}

// Summary aggregates a window of sessions.
type Summary struct {
	Sessions  int
	Questions int
	Correct   int
	Points    int
	Accuracy  float64
}

// Summarize folds stats into a Summary.
func Summarize(stats []SessionStat) Summary {
	var sum Summary
	for _, s := range stats {
		sum.Sessions++
		sum.Questions += s.TotalQuestions
		sum.Correct += s.CorrectAnswers
		sum.Points += s.PointsEarned
	}
	if sum.Questions > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Questions) * 100
	}
	return sum
}

// Since returns the sessions completed at or after t.
func Since(stats []SessionStat, t time.Time) []SessionStat {
	var out []SessionStat
	for _, s := range stats {
		if !s.CompletedAt.Before(t) {
			out = append(out, s)
		}
	}
	return out
}

// Today summarizes sessions completed on now's local calendar day.
func (p *Player) Today(now time.Time) Summary {
	y, m, d := now.Date()

	var out []SessionStat
	for _, s := range p.Sessions {
		sy, sm, sd := s.CompletedAt.In(now.Location()).Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}
	return Summarize(out)
}

// Week summarizes the last 7 days.
func (p *Player) Week(now time.Time) Summary {
	return Summarize(Since(p.Sessions, now.AddDate(0, 0, -7)))
}

// Month summarizes the last 30 days.
func (p *Player) Month(now time.Time) Summary {
	return Summarize(Since(p.Sessions, now.AddDate(0, 0, -30)))
}
