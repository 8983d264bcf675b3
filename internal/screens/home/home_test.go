package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/screens/quiz"
)

func newTestDeps(t *testing.T, grade int) *screens.Deps {
	t.Helper()
	text, err := i18n.NewDefault()
	require.NoError(t, err)
	text.SetLanguage("en")

	e := engine.New(&player.Player{}, text)
	e.SetPlayer("Ada", grade, "avatar_fox.png")
	return &screens.Deps{Engine: e, Text: text, Questions: 3}
}

func TestHomeScreen_MenuFollowsGrade(t *testing.T) {
	deps := newTestDeps(t, 0)
	h := New(deps)
	assert.Equal(t, []string{
		"Subtraction", "Addition", "Edit Profile", "Statistics", "History", "Quit",
	}, h.menu.Labels())
	assert.True(t, h.menu.Items[4].Disabled, "history needs an event store")

	deps.Engine.SetPlayer("Ada", 5, "")
	h.View(100, 40)
	assert.Equal(t, "Division", h.menu.Labels()[0])
	assert.Len(t, h.menu.Items, 9)
}

func TestHomeScreen_MenuFollowsLanguage(t *testing.T) {
	deps := newTestDeps(t, 0)
	h := New(deps)

	deps.Text.SetLanguage("sv")
	h.View(100, 40)
	assert.Equal(t, "Subtraktion", h.menu.Labels()[0])
	assert.Equal(t, "Hem", h.Title())
}

func TestHomeScreen_View(t *testing.T) {
	deps := newTestDeps(t, 2)
	deps.Engine.AwardPoints(60)
	h := New(deps)

	view := h.View(120, 60)
	assert.Contains(t, view, "Welcome Ada! (Grade 2)")
	assert.Contains(t, view, "Points: 60")
	assert.Contains(t, view, "Next avatar at 100 points")
	assert.Contains(t, view, "Pick a Challenge!")

	deps.Engine.AwardPoints(200)
	assert.Contains(t, h.View(120, 60), "Every avatar unlocked!")
}

func TestHomeScreen_StartsQuiz(t *testing.T) {
	h := New(newTestDeps(t, 1))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	require.IsType(t, &quiz.QuizScreen{}, msg.Screen)
	assert.Equal(t, "Subtraction", msg.Screen.Title())
}

func TestHomeScreen_Quit(t *testing.T) {
	h := New(newTestDeps(t, 1))
	h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHomeScreen_ResumeAfterProfileEdit(t *testing.T) {
	deps := newTestDeps(t, 1)
	h := New(deps)

	deps.Engine.SetPlayer("Ada", 3, "")
	_, cmd := h.Update(router.ResumedMsg{})
	assert.Nil(t, cmd)
	assert.Contains(t, h.menu.Labels(), "Algebra")
}

func TestMascotFor(t *testing.T) {
	last := player.Unlockables[len(player.Unlockables)-1].Points

	assert.Equal(t, MascotNewcomer, mascotFor(&player.Player{}, 5))
	assert.Equal(t, MascotIdle, mascotFor(&player.Player{Name: "Ada"}, streakCelebrate-1))
	assert.Equal(t, MascotCheering, mascotFor(&player.Player{Name: "Ada", Points: last}, streakCelebrate))
	assert.Equal(t, MascotProud, mascotFor(&player.Player{Name: "Ada", Points: last}, 0))
}

func TestRenderMascot_UnknownIsIdle(t *testing.T) {
	assert.Equal(t, RenderMascot(MascotIdle), RenderMascot(MascotVariant(42)))
	assert.Contains(t, RenderMascot(MascotCheering), "(^,^)")
}
