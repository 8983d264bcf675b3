package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func testText(t *testing.T) *i18n.Localizer {
	t.Helper()
	l, err := i18n.NewDefault()
	require.NoError(t, err)
	l.SetLanguage("en")
	return l
}

func testResult() Result {
	return Result{
		Stat: player.SessionStat{
			CompletedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Category:       "Category_Addition",
			TotalQuestions: 10,
			CorrectAnswers: 8,
			PointsEarned:   12,
		},
		Planned:     10,
		TotalPoints: 62,
		Unlocked:    []string{"avatar_dragon.png"},
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testText(t), testResult(), nil)
	assert.Equal(t, "Finished", s.Title())

	view := s.View(80, 24)
	assert.Contains(t, view, "You answered 8 / 10! Points total: 62")
	assert.Contains(t, view, "Accuracy: 80%")
	assert.Contains(t, view, "dragon")
	assert.NotContains(t, view, "Continue")
}

func TestSummaryScreen_ContinueReplaces(t *testing.T) {
	calls := 0
	s := New(testText(t), testResult(), func() screen.Screen {
		calls++
		return &stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Quiz", msg.Screen.Title())
	assert.Equal(t, 1, calls)
}

func TestSummaryScreen_GoBackPops(t *testing.T) {
	s := New(testText(t), testResult(), func() screen.Screen { return &stubScreen{} })

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_Esc(t *testing.T) {
	s := New(testText(t), testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	assert.Len(t, New(testText(t), testResult(), nil).KeyHints(), 3)
}
