package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *stubScreen) View(int, int) string { return "home" }

func (s *stubScreen) Title() string { return "Home" }

func newWelcome(t *testing.T) (*WelcomeScreen, *int) {
	t.Helper()
	text, err := i18n.NewDefault()
	require.NoError(t, err)
	text.SetLanguage("en")

	calls := 0
	return New(text, func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

// advance feeds n animation frames and returns the last command.
func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func requireReplace(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.NotNil(t, msg.Screen)
}

func TestView_TaglineAfterReveal(t *testing.T) {
	w, _ := newWelcome(t)
	assert.NotContains(t, w.View(80, 24), "make math fun")

	advance(w, int(readyAfter/frameInterval))
	view := w.View(80, 24)
	assert.Contains(t, view, "make math fun")
	assert.Contains(t, view, "×")
}

func TestView_CompactBanner(t *testing.T) {
	w, _ := newWelcome(t)
	assert.Contains(t, w.View(30, 24), "M A T H")
	assert.NotContains(t, w.View(30, 24), "╔╦╗")
}

func TestKeyPressContinues(t *testing.T) {
	w, calls := newWelcome(t)
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	requireReplace(t, cmd)
	assert.Equal(t, 1, *calls)
}

func TestAutoAdvance(t *testing.T) {
	w, calls := newWelcome(t)
	frames := int(autoAdvance / frameInterval)

	cmd := advance(w, frames-1)
	require.NotNil(t, cmd, "still animating")
	assert.Zero(t, *calls)

	requireReplace(t, advance(w, 1))
	assert.Equal(t, 1, *calls)

	assert.Nil(t, advance(w, 1), "frames stop after leaving")
}

func TestLeavesOnce(t *testing.T) {
	w, calls := newWelcome(t)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)
	assert.Empty(t, w.Title())
}
