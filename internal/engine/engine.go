package engine

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/kaptenjon/mathquest/internal/player"
)

// DefaultQuestionCount is the quiz length hosts use when none is configured.
const DefaultQuestionCount = 10

// AnswerTolerance is the largest difference between the given and the
// correct answer that still counts as correct.
const AnswerTolerance = 1e-4

// Templater renders localized question templates. Implemented by the
// localization collaborator.
type Templater interface {
	Text(key string, args ...any) string
}

// Question is a generated problem ready for display.
type Question struct {
	// Text already contains the operands, e.g. "7 + 5 = ?".
	Text string

	// Answer is the expected numeric answer.
	Answer float64

	Category Category
}

// Check reports whether given matches the answer within AnswerTolerance.
func (q Question) Check(given float64) bool {
	return math.Abs(q.Answer-given) < AnswerTolerance
}

// Engine is the adaptive question engine for one player. It is owned by the
// host and is not safe for concurrent use; the answer flow is sequential.
type Engine struct {
	player *player.Player
	text   Templater
	rng    *rand.Rand

	difficulty int
	streak     int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for operand draws and cheers.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// New creates an engine bound to p. p is mutated in place by SetPlayer and
// AwardPoints, so the host observes changes through its own pointer.
func New(p *player.Player, text Templater, opts ...Option) *Engine {
	if p == nil {
		p = &player.Player{}
	}
	e := &Engine{
		player:     p,
		text:       text,
		difficulty: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// Player returns the player the engine mutates.
func (e *Engine) Player() *player.Player {
	return e.player
}

// Difficulty returns the current difficulty level (>= 1).
func (e *Engine) Difficulty() int {
	return e.difficulty
}

// Streak returns the number of consecutive correct answers.
func (e *Engine) Streak() int {
	return e.streak
}

// SetPlayer establishes a profile and resets difficulty and streak.
func (e *Engine) SetPlayer(name string, grade int, avatar string) {
	e.player.Setup(name, grade, avatar)
	e.difficulty = 1
	e.streak = 0
}

// AwardPoints adds points to the player and returns the avatars newly
// unlocked by this award.
func (e *Engine) AwardPoints(points int) []string {
	return e.player.Award(points)
}

// Categories returns the categories available at the player's grade.
func (e *Engine) Categories() []Category {
	return CategoriesForGrade(e.player.Grade)
}

// AdjustDifficulty applies the outcome of one answer to the streak and the
// difficulty level.
func (e *Engine) AdjustDifficulty(correct bool) {
	grade := e.player.Grade
	if correct {
		e.streak++
		if e.streak%StreakThreshold(grade) == 0 {
			e.difficulty = min(e.difficulty+1, MaxDifficulty(grade))
		}
		return
	}
	e.streak = 0
	e.difficulty = max(1, e.difficulty-DifficultyDrop(grade))
}

// Roll returns a uniform int in [0, n) from the engine's random source.
// Returns 0 when n <= 0.
func (e *Engine) Roll(n int) int {
	if n <= 0 {
		return 0
	}
	return e.rng.IntN(n)
}

// GenerateQuestions builds count questions for the category identified by
// key. Unknown keys generate addition questions. count <= 0 yields none.
func (e *Engine) GenerateQuestions(key string, count int) []Question {
	c, _ := ParseCategory(key)
	return e.Generate(c, count)
}

// Generate builds count questions of category c at the current grade and
// difficulty.
func (e *Engine) Generate(c Category, count int) []Question {
	if count <= 0 {
		return []Question{}
	}
	gen, ok := generators[c]
	if !ok {
		c, gen = Addition, generators[Addition]
	}

	questions := make([]Question, 0, count)
	for range count {
		q := gen(e)
		q.Category = c
		questions = append(questions, q)
	}
	return questions
}

// between returns a uniform int in [lo, hi). Returns lo when the range is
// empty.
func (e *Engine) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.IntN(hi-lo)
}

// template renders key with the operands as plain digits, so the printer
// never groups them.
func (e *Engine) template(key string, operands ...int) string {
	if e.text == nil {
		return key
	}
	args := make([]any, len(operands))
	for i, n := range operands {
		args[i] = strconv.Itoa(n)
	}
	return e.text.Text(key, args...)
}
