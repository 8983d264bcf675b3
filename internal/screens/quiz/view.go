package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

// renderInfoLine renders the progress line above the question.
func (s *QuizScreen) renderInfoLine(width int) string {
	t := s.deps.Text
	e := s.deps.Engine

	number := min(s.quiz.Index()+1, s.quiz.Len())
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + t.Text("Quiz_Progress", number, s.quiz.Len()))

	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Text("Quiz_Difficulty", e.Difficulty())) +
		"   " + theme.Streak(e.Streak()).Render(t.Text("Quiz_Streak", e.Streak()))

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}
	return line
}

// renderQuestion renders the active question and the answer field.
func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.quiz.Current()
	if !ok {
		return ""
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	progress := float64(s.quiz.Index()) / float64(s.quiz.Len())
	bar := components.NewProgressBar("", progress, false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.deps.Text.Text("Quiz_Answer", s.input.View())))

	if s.alert != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Alert.Foreground(theme.Accent).Render(
				s.deps.Text.Text("Quiz_EnterAnswer_Title")+"  "+s.alert)))
	}
	return b.String()
}

// renderFeedback shows the verdict for the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	res := s.last
	if res == nil {
		return ""
	}
	t := s.deps.Text
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(res.Question.Text))
	b.WriteString("\n\n")

	if res.Correct {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render(
			t.Text("Quiz_Correct", res.Total)))
		if res.Cheer != "" {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.ArcadeYellow).Render("★ " + res.Cheer + " ★"))
		}
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(t.Text("Quiz_Wrong")))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(
			t.Text("Quiz_CorrectAnswer", game.FormatNumber(res.Question.Answer))))
	}

	for _, id := range res.Unlocked {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Accent).Bold(true).Render(
			player.AvatarIcon(id) + " " + t.Text("Quiz_Unlocked", player.AvatarName(id))))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.deps.Text.Text("Welcome_PressKey")))
	return b.String()
}

func (s *QuizScreen) renderQuitConfirm(width, height int) string {
	box := theme.Alert.Render(s.deps.Text.Text("Quiz_QuitConfirm"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
