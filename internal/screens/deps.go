// Package screens holds what every TUI screen needs to reach the game.
// The screens themselves live in the sub-packages.
package screens

import (
	"log/slog"
	"time"

	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/store"
)

// Deps is shared by all screens of one program run. Events and Sink may be
// nil, in which case history is unavailable and nothing is persisted.
type Deps struct {
	Engine    *engine.Engine
	Text      *i18n.Localizer
	Sink      game.Sink
	Events    store.EventRepo
	Logger    *slog.Logger
	Questions int
	Now       func() time.Time
}

// Clock returns Now, or time.Now when unset.
func (d *Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Log returns Logger, or the default logger when unset.
func (d *Deps) Log() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// QuizOptions returns the options for starting a quiz in the current
// language.
func (d *Deps) QuizOptions() game.Options {
	return game.Options{
		Sink:   d.Sink,
		Cheers: d.Text.Cheers,
		Now:    d.Now,
	}
}
