package game

import (
	"context"
	"fmt"

	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/store"
)

// Restore loads the saved profile into the engine's player. Unlocks are
// re-derived by awarding the saved points, then the saved avatar is
// re-selected. Session history is loaded when events is non-nil.
// found is false when no profile has been saved yet.
func Restore(ctx context.Context, e *engine.Engine, profiles store.ProfileRepo, events store.EventRepo) (found bool, err error) {
	prof, err := profiles.LoadProfile(ctx)
	if err != nil {
		return false, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		return false, nil
	}

	p := e.Player()
	e.SetPlayer(prof.Name, prof.Grade, prof.Avatar)
	e.AwardPoints(prof.Points - p.Points)
	p.SelectAvatar(prof.Avatar)
	p.Language = prof.Language

	if events != nil {
		stats, err := events.SessionStats(ctx)
		if err != nil {
			return true, fmt.Errorf("load session stats: %w", err)
		}
		p.Sessions = p.Sessions[:0]
		for _, s := range stats {
			p.AddSession(player.SessionStat{
				CompletedAt:    s.CompletedAt,
				Category:       s.Category,
				TotalQuestions: s.TotalQuestions,
				CorrectAnswers: s.CorrectAnswers,
				PointsEarned:   s.PointsEarned,
			})
		}
	}
	return true, nil
}
