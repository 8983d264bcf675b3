package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/store"
)

type recordingSink struct {
	saves    []store.Profile
	answers  []store.AnswerEventData
	sessions []store.SessionStatData
}

func (s *recordingSink) SavePlayer(p *player.Player) {
	s.saves = append(s.saves, ProfileFromPlayer(p))
}

func (s *recordingSink) LogAnswer(data store.AnswerEventData) {
	s.answers = append(s.answers, data)
}

func (s *recordingSink) LogSession(data store.SessionStatData) {
	s.sessions = append(s.sessions, data)
}

var fixedNow = time.Date(2026, 4, 2, 16, 30, 0, 0, time.UTC)

func newTestQuiz(t *testing.T, grade int, count int) (*Quiz, *engine.Engine, *recordingSink) {
	t.Helper()
	e := engine.New(&player.Player{}, nil, engine.WithRand(rand.New(rand.NewPCG(7, 9))))
	e.SetPlayer("Ada", grade, "")
	sink := &recordingSink{}
	q := Start(e, engine.Addition.Key(), count, Options{
		Sink:   sink,
		Cheers: func() []string { return []string{"Great!", "Super!"} },
		Now:    func() time.Time { return fixedNow },
	})
	return q, e, sink
}

func answerCurrent(t *testing.T, q *Quiz, correct bool) Result {
	t.Helper()
	cur, ok := q.Current()
	require.True(t, ok)
	value := cur.Answer
	if !correct {
		value++
	}
	res, err := q.Submit(value)
	require.NoError(t, err)
	return res
}

func TestStart(t *testing.T) {
	q, e, _ := newTestQuiz(t, 1, 5)
	assert.Equal(t, 5, q.Len())
	assert.Zero(t, q.Index())
	assert.False(t, q.Done())
	assert.Equal(t, engine.Addition, q.Category)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, fixedNow, q.StartedAt())
	assert.Equal(t, 1, e.Difficulty())

	q2 := Start(e, "Category_Unknown", 0, Options{})
	assert.Equal(t, engine.Addition, q2.Category)
	assert.Equal(t, engine.DefaultQuestionCount, q2.Len())
	assert.NotEqual(t, q.ID, q2.ID)
}

func TestSubmit_AllCorrect(t *testing.T) {
	q, e, sink := newTestQuiz(t, 1, 10)

	var bonuses []int
	for !q.Done() {
		res := answerCurrent(t, q, true)
		assert.True(t, res.Correct)
		assert.Equal(t, engine.BasePoints, res.Base)
		assert.Contains(t, []string{"Great!", "Super!"}, res.Cheer)
		assert.Equal(t, res.StreakBefore+1, res.Streak)
		bonuses = append(bonuses, res.Bonus)
	}

	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 3, 3}, bonuses)
	assert.Equal(t, 28, e.Player().Points)
	assert.Equal(t, 10, q.Correct())
	// Grade 1 climbs one level every third correct answer.
	assert.Equal(t, 4, e.Difficulty())

	require.Len(t, sink.answers, 10)
	assert.Len(t, sink.saves, 10)
	last := sink.answers[9]
	assert.Equal(t, q.ID, last.SessionID)
	assert.Equal(t, "Category_Addition", last.Category)
	assert.Equal(t, 9, last.StreakBefore)
	assert.Equal(t, 4, last.PointsAwarded)
	assert.Equal(t, 4, last.Difficulty)
	assert.Equal(t, 28, sink.saves[9].Points)

	_, err := q.Submit(1)
	assert.True(t, errors.Is(err, ErrQuizFinished))
}

func TestSubmit_WrongAnswer(t *testing.T) {
	q, e, sink := newTestQuiz(t, 1, 3)
	answerCurrent(t, q, true)
	answerCurrent(t, q, true)

	res := answerCurrent(t, q, false)
	assert.False(t, res.Correct)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Cheer)
	assert.Nil(t, res.Unlocked)
	assert.Equal(t, 2, res.StreakBefore)
	assert.Zero(t, res.Streak)
	assert.Equal(t, 1, res.Difficulty)
	assert.Equal(t, 2, e.Player().Points)
	assert.False(t, sink.answers[2].Correct)
}

func TestSubmit_ToleranceAndUnlock(t *testing.T) {
	q, e, _ := newTestQuiz(t, 2, 3)
	e.Player().Points = 49

	cur, _ := q.Current()
	res, err := q.Submit(cur.Answer + 0.00001)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, []string{"avatar_dragon.png"}, res.Unlocked)
	assert.True(t, e.Player().IsUnlocked("avatar_dragon.png"))
}

func TestSubmit_NoCheersConfigured(t *testing.T) {
	e := engine.New(&player.Player{}, nil, engine.WithRand(rand.New(rand.NewPCG(1, 1))))
	e.SetPlayer("x", 0, "")
	q := Start(e, engine.Subtraction.Key(), 1, Options{})

	cur, _ := q.Current()
	res, err := q.Submit(cur.Answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Empty(t, res.Cheer)
}

func TestSubmit_NonFiniteRejected(t *testing.T) {
	q, e, sink := newTestQuiz(t, 1, 3)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := q.Submit(v)
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	}
	assert.Zero(t, q.Index())
	assert.Zero(t, e.Streak())
	assert.Empty(t, sink.answers)
}

func TestFinish(t *testing.T) {
	e := engine.New(&player.Player{Points: 40}, nil, engine.WithRand(rand.New(rand.NewPCG(7, 9))))
	e.SetPlayer("Ada", 3, "")
	sink := &recordingSink{}
	q := Start(e, engine.Addition.Key(), 4, Options{
		Sink: sink,
		Now:  func() time.Time { return fixedNow },
	})

	answerCurrent(t, q, true)
	answerCurrent(t, q, false)
	answerCurrent(t, q, true)
	answerCurrent(t, q, true)

	stat, recorded := q.Finish()
	require.True(t, recorded)
	assert.Equal(t, fixedNow, stat.CompletedAt)
	assert.Equal(t, "Category_Addition", stat.Category)
	assert.Equal(t, 4, stat.TotalQuestions)
	assert.Equal(t, 3, stat.CorrectAnswers)
	assert.Equal(t, e.Player().Points-40, stat.PointsEarned)
	assert.Equal(t, []player.SessionStat{stat}, e.Player().Sessions)

	again, recorded := q.Finish()
	assert.True(t, recorded)
	assert.Equal(t, stat, again)
	assert.Len(t, e.Player().Sessions, 1, "finish must only record once")

	require.Len(t, sink.sessions, 1)
	assert.Equal(t, q.ID, sink.sessions[0].SessionID)
	assert.Equal(t, stat.PointsEarned, sink.sessions[0].PointsEarned)
}

func TestFinish_LeftEarly(t *testing.T) {
	q, e, _ := newTestQuiz(t, 1, 10)

	_, recorded := q.Finish()
	assert.False(t, recorded)
	assert.Empty(t, e.Player().Sessions)

	answerCurrent(t, q, true)
	stat, recorded := q.Finish()
	require.True(t, recorded)
	assert.Equal(t, 1, stat.TotalQuestions)
}
