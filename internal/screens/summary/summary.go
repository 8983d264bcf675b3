package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// Result is what the summary shows about a finished quiz.
type Result struct {
	Stat        player.SessionStat
	Planned     int // questions in the quiz
	TotalPoints int // player's points after the quiz
	Unlocked    []string
}

// SummaryScreen displays the end-of-quiz message. Continue starts another
// quiz in the same category via retry; Go Back returns to the caller.
type SummaryScreen struct {
	text   *i18n.Localizer
	result Result
	menu   components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. A nil retry hides Continue.
func New(text *i18n.Localizer, result Result, retry func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{text: text, result: result}

	var items []components.MenuItem
	if retry != nil {
		items = append(items, components.MenuItem{
			Label: text.Text("Quiz_Continue"),
			Action: func() tea.Cmd {
				next := retry()
				return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  text.Text("Quiz_GoBack"),
		Action: func() tea.Cmd { return func() tea.Msg { return router.PopScreenMsg{} } },
	})
	s.menu = components.NewMenu(items)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.text.Text("Quiz_Finished_Title")
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.text.Text("Quiz_Finished_Title")))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(
		s.text.Text("Quiz_Finished_Message", r.Stat.CorrectAnswers, r.Planned, r.TotalPoints)))
	b.WriteString("\n\n")

	line := fmt.Sprintf("%s    %s    %s",
		s.text.CategoryName(r.Stat.Category),
		s.text.Text("Stats_Accuracy", r.Stat.Accuracy()),
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("+%d ★", r.Stat.PointsEarned)))
	b.WriteString(center.Foreground(theme.TextDim).Render(line))
	b.WriteString("\n")

	for _, id := range r.Unlocked {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(
			player.AvatarIcon(id) + " " + s.text.Text("Quiz_Unlocked", player.AvatarName(id))))
	}

	b.WriteString("\n\n")
	b.WriteString(components.ArcadeMenu(s.menu, width, true))
	return b.String()
}
