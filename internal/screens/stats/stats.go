package stats

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// StatsScreen shows overall and windowed quiz statistics for the player.
type StatsScreen struct {
	deps *screens.Deps
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(deps *screens.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return s.deps.Text.Text("Stats_Title")
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	t := s.deps.Text
	p := s.deps.Engine.Player()

	if len(p.Sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + t.Text("Stats_NoData"))
	}

	cw := components.ContentWidth(width)
	now := s.deps.Clock()
	overall := player.Summarize(p.Sessions)

	var b strings.Builder
	b.WriteString(s.card(t.Text("Stats_Overall"), overall, cw,
		t.Text("Stats_Lessons", p.TotalLessons()),
		t.Text("Stats_Points", p.Points)))

	windows := []struct {
		key string
		sum player.Summary
	}{
		{"Stats_Today", p.Today(now)},
		{"Stats_ThisWeek", p.Week(now)},
		{"Stats_ThisMonth", p.Month(now)},
	}
	cards := make([]string, 0, len(windows))
	for _, w := range windows {
		cards = append(cards, s.card(t.Text(w.key), w.sum, cw/len(windows)+8,
			t.Text("Stats_Points", w.sum.Points)))
	}
	b.WriteString("\n")
	if layout.IsCompactWidth(width) {
		b.WriteString(strings.Join(cards, "\n"))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// card renders one summary box with an accuracy bar.
func (s *StatsScreen) card(title string, sum player.Summary, cw int, extra ...string) string {
	t := s.deps.Text
	lines := []string{
		theme.Title.Render(title),
		"",
		t.Text("Stats_Sessions", sum.Sessions),
		t.Text("Stats_Questions", sum.Questions),
		t.Text("Stats_Accuracy", sum.Accuracy),
	}
	lines = append(lines, extra...)
	lines = append(lines, "", components.NewProgressBar("", sum.Accuracy/100, false, cw-10).View())
	return components.ArcadeCard(strings.Join(lines, "\n"), cw)
}
