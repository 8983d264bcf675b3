package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/store"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

type historyLoadedMsg struct {
	Answers []store.AnswerRecord
	Err     error
}

// HistoryScreen lists the most recent answers, newest first.
type HistoryScreen struct {
	deps     *screens.Deps
	answers  []store.AnswerRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(deps *screens.Deps) *HistoryScreen {
	return &HistoryScreen{
		deps:     deps,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.deps.Events
	return func() tea.Msg {
		if events == nil {
			return historyLoadedMsg{}
		}
		answers, err := events.RecentAnswers(context.Background(), store.DefaultRecentAnswers)
		return historyLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.deps.Text.Text("History_Title")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.deps.Log().Error("load history", "error", msg.Err)
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  ...")
	}
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.deps.Text.Text("History_Empty"))
	}

	// Keep the selection on screen; expanded rows take one extra line.
	rows := max(height-2, 1)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	var b strings.Builder
	b.WriteString("\n")
	for i := start; i < len(s.answers) && i < start+rows; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(i)))
		b.WriteString("\n")
		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderDetail(i)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(i int) string {
	a := s.answers[i]

	mark := theme.Correct.Render("✓")
	if !a.Correct {
		mark = theme.Incorrect.Render("✗")
	}

	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}

	line := fmt.Sprintf("%s%s  %-14s  %-28s  %6s",
		prefix,
		a.Timestamp.Format("Jan 02 15:04"),
		truncate(s.deps.Text.CategoryName(a.Category), 14),
		truncate(a.QuestionText, 28),
		game.FormatNumber(a.UserAnswer))

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line) + "  " + mark
}

func (s *HistoryScreen) renderDetail(i int) string {
	a := s.answers[i]
	t := s.deps.Text
	detail := fmt.Sprintf("    %s   %s   %s   +%d ★",
		t.Text("Quiz_CorrectAnswer", game.FormatNumber(a.CorrectAnswer)),
		t.Text("Quiz_Difficulty", a.Difficulty),
		t.Text("Quiz_Streak", a.StreakBefore),
		a.PointsAwarded)
	return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
