// Package game runs a quiz over the adaptive engine: it judges answers,
// awards points and queues persistence.
package game

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/store"
)

// ErrQuizFinished is returned when an answer is submitted after the last
// question.
var ErrQuizFinished = errors.New("quiz finished")

// Options configures a quiz run. The zero value is usable.
type Options struct {
	// Sink receives persistence requests. Nil discards them.
	Sink Sink

	// Cheers returns the praise messages to pick from after a correct
	// answer. Evaluated per answer so a language switch takes effect
	// immediately.
	Cheers func() []string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Result describes the outcome of one submitted answer.
type Result struct {
	Question engine.Question
	Given    float64
	Correct  bool

	Base  int
	Bonus int
	Total int

	// Unlocked lists avatars unlocked by this answer's points.
	Unlocked []string

	StreakBefore int
	Streak       int
	Difficulty   int

	// Cheer is empty for wrong answers.
	Cheer string
}

// Quiz is one run through a batch of questions. Like the engine it drives,
// it is not safe for concurrent use.
type Quiz struct {
	ID       string
	Category engine.Category

	engine    *engine.Engine
	questions []engine.Question
	index     int
	correct   int

	startPoints int
	startedAt   time.Time

	sink   Sink
	cheers func() []string
	now    func() time.Time

	finished *player.SessionStat
}

// Start generates count questions for categoryKey at the engine's current
// grade and difficulty. Unknown keys run an addition quiz and count <= 0
// runs engine.DefaultQuestionCount questions.
func Start(e *engine.Engine, categoryKey string, count int, opts Options) *Quiz {
	c, _ := engine.ParseCategory(categoryKey)
	if count <= 0 {
		count = engine.DefaultQuestionCount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Quiz{
		ID:          uuid.NewString(),
		Category:    c,
		engine:      e,
		questions:   e.Generate(c, count),
		startPoints: e.Player().Points,
		startedAt:   opts.Now(),
		sink:        opts.Sink,
		cheers:      opts.Cheers,
		now:         opts.Now,
	}
}

// Current returns the question awaiting an answer. ok is false once every
// question has been answered.
func (q *Quiz) Current() (engine.Question, bool) {
	if q.Done() {
		return engine.Question{}, false
	}
	return q.questions[q.index], true
}

// Index returns the zero-based position of the current question.
func (q *Quiz) Index() int { return q.index }

// Len returns the number of questions in the quiz.
func (q *Quiz) Len() int { return len(q.questions) }

// Correct returns the number of correct answers so far.
func (q *Quiz) Correct() int { return q.correct }

// Done reports whether every question has been answered.
func (q *Quiz) Done() bool { return q.index >= len(q.questions) }

// StartedAt returns when the quiz was started.
func (q *Quiz) StartedAt() time.Time { return q.startedAt }

// Submit judges value against the current question, updates the engine and
// the player, queues the answer log and a profile save, then advances. A
// non-finite value returns ErrInvalidAnswer and judges nothing.
func (q *Quiz) Submit(value float64) (Result, error) {
	cur, ok := q.Current()
	if !ok {
		return Result{}, ErrQuizFinished
	}
	if !isFinite(value) {
		return Result{}, ErrInvalidAnswer
	}

	e := q.engine
	res := Result{
		Question:     cur,
		Given:        value,
		Correct:      cur.Check(value),
		StreakBefore: e.Streak(),
	}

	e.AdjustDifficulty(res.Correct)
	res.Streak = e.Streak()
	res.Difficulty = e.Difficulty()

	if res.Correct {
		q.correct++
		res.Base = engine.BasePoints
		res.Bonus = engine.Bonus(res.Streak)
		res.Cheer = q.pickCheer()
	}
	res.Total = res.Base + res.Bonus
	if res.Total > 0 {
		res.Unlocked = e.AwardPoints(res.Total)
	}

	if q.sink != nil {
		q.sink.LogAnswer(store.AnswerEventData{
			SessionID:     q.ID,
			Category:      cur.Category.Key(),
			QuestionText:  cur.Text,
			CorrectAnswer: cur.Answer,
			UserAnswer:    value,
			Correct:       res.Correct,
			Difficulty:    res.Difficulty,
			StreakBefore:  res.StreakBefore,
			PointsAwarded: res.Total,
		})
		q.sink.SavePlayer(e.Player())
	}

	q.index++
	return res, nil
}

func (q *Quiz) pickCheer() string {
	if q.cheers == nil {
		return ""
	}
	list := q.cheers()
	if len(list) == 0 {
		return ""
	}
	return list[q.engine.Roll(len(list))]
}

// Finish records the quiz on the player's history and queues it for
// persistence. Only answered questions count, so a quiz left early is
// recorded as far as it got. The first call wins; later calls return the
// same stat. recorded is false when nothing was answered.
func (q *Quiz) Finish() (stat player.SessionStat, recorded bool) {
	if q.finished != nil {
		return *q.finished, true
	}
	if q.index == 0 {
		return player.SessionStat{Category: q.Category.Key()}, false
	}

	p := q.engine.Player()
	stat = player.SessionStat{
		CompletedAt:    q.now(),
		Category:       q.Category.Key(),
		TotalQuestions: q.index,
		CorrectAnswers: q.correct,
		PointsEarned:   p.Points - q.startPoints,
	}
	p.AddSession(stat)
	q.finished = &stat

	if q.sink != nil {
		q.sink.LogSession(store.SessionStatData{
			SessionID:      q.ID,
			CompletedAt:    stat.CompletedAt,
			Category:       stat.Category,
			TotalQuestions: stat.TotalQuestions,
			CorrectAnswers: stat.CorrectAnswers,
			PointsEarned:   stat.PointsEarned,
		})
		q.sink.SavePlayer(p)
	}
	return stat, true
}
