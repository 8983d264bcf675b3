package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/store"
)

// DefaultQueueSize is the number of pending writes the Writer buffers.
const DefaultQueueSize = 64

// writeTimeout bounds a single persistence call.
const writeTimeout = 5 * time.Second

// Sink receives the persistence requests of the answer flow. Calls never
// block and never fail from the caller's point of view.
type Sink interface {
	SavePlayer(p *player.Player)
	LogAnswer(data store.AnswerEventData)
	LogSession(data store.SessionStatData)
}

type writeJob struct {
	name string
	run  func(ctx context.Context) error
}

// Writer persists profile snapshots, answers and session stats on a single
// background goroutine. Failures are logged and swallowed; they never
// affect in-memory state.
type Writer struct {
	profiles store.ProfileRepo
	events   store.EventRepo
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	jobs   chan writeJob
	done   chan struct{}
}

// NewWriter starts a writer. A nil logger uses slog.Default().
func NewWriter(profiles store.ProfileRepo, events store.EventRepo, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Writer{
		profiles: profiles,
		events:   events,
		logger:   logger,
		jobs:     make(chan writeJob, DefaultQueueSize),
		done:     make(chan struct{}),
	}
	go w.processLoop()
	return w
}

// SavePlayer queues a profile save. The profile is copied from p before
// returning, so the writer never reads state the answer flow is mutating.
func (w *Writer) SavePlayer(p *player.Player) {
	if p == nil {
		return
	}
	prof := ProfileFromPlayer(p)
	w.enqueue(writeJob{
		name: "save profile",
		run: func(ctx context.Context) error {
			return w.profiles.SaveProfile(ctx, prof)
		},
	})
}

// LogAnswer queues an answer log entry.
func (w *Writer) LogAnswer(data store.AnswerEventData) {
	w.enqueue(writeJob{
		name: "log answer",
		run: func(ctx context.Context) error {
			return w.events.AppendAnswer(ctx, data)
		},
	})
}

// LogSession queues a finished quiz.
func (w *Writer) LogSession(data store.SessionStatData) {
	w.enqueue(writeJob{
		name: "log session",
		run: func(ctx context.Context) error {
			return w.events.AppendSessionStat(ctx, data)
		},
	})
}

func (w *Writer) enqueue(job writeJob) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.logger.Warn("writer closed, dropping write", "job", job.name)
		return
	}
	select {
	case w.jobs <- job:
	default:
		// Queue full; never block the answer flow.
		w.logger.Warn("write queue full, dropping write", "job", job.name)
	}
}

func (w *Writer) processLoop() {
	defer close(w.done)
	for job := range w.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := job.run(ctx); err != nil {
			w.logger.Error("persistence failed", "job", job.name, "error", err)
		}
		cancel()
	}
}

// Close stops accepting writes, drains the queue and waits for the
// background goroutine to exit. Safe to call more than once.
func (w *Writer) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}

// ProfileFromPlayer converts a player into its persisted form.
func ProfileFromPlayer(p *player.Player) store.Profile {
	return store.Profile{
		Name:     p.Name,
		Grade:    p.Grade,
		Points:   p.Points,
		Avatar:   p.Avatar,
		Language: p.Language,
	}
}
