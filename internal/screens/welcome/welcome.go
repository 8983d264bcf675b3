// Package welcome renders the splash shown on launch.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

const (
	frameInterval = 120 * time.Millisecond

	// revealPerLine is how long each banner line takes to appear.
	revealPerLine = 2 * frameInterval
	// readyAfter is when the tagline and key hint show up.
	readyAfter = 1200 * time.Millisecond
	// autoAdvance continues to the next screen without a key press.
	autoAdvance = 6 * time.Second
)

// operators light up one at a time under the banner.
var operators = []string{"+", "−", "×", "÷"}

type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// WelcomeScreen reveals the banner, then continues on a key press or after
// autoAdvance, whichever comes first.
type WelcomeScreen struct {
	text *i18n.Localizer
	next func() screen.Screen

	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next().
func New(text *i18n.Localizer, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{text: text, next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.elapsed += frameInterval
		w.frame++
		if w.elapsed >= autoAdvance {
			return w, w.leave()
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

// leave builds the next screen once; later calls return nil.
func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	s := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

// ready reports whether the tagline and hint are visible.
func (w *WelcomeScreen) ready() bool { return w.elapsed >= readyAfter }

func (w *WelcomeScreen) View(width, height int) string {
	banner := strings.Split(RenderBanner(width), "\n")
	shown := min(len(banner), int(w.elapsed/revealPerLine)+1)

	lines := append([]string{}, banner[:shown]...)
	lines = append(lines, "", w.operatorRow())

	if w.ready() {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(w.text.Text("Welcome_Tagline"))
		lines = append(lines, "", tagline)

		// Blink the hint every other pair of frames.
		if (w.frame/2)%2 == 0 {
			lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render(w.text.Text("Welcome_PressKey")))
		} else {
			lines = append(lines, "", "")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (w *WelcomeScreen) operatorRow() string {
	lit := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	active := w.frame % len(operators)
	cells := make([]string, len(operators))
	for i, op := range operators {
		if i == active {
			cells[i] = lit.Render(op)
		} else {
			cells[i] = dim.Render(op)
		}
	}
	return strings.Join(cells, "   ")
}
