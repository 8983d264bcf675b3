package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/screens/summary"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
)

// QuizScreen asks the questions of one quiz and shows feedback after each
// answer.
type QuizScreen struct {
	deps        *screens.Deps
	categoryKey string
	quiz        *game.Quiz
	input       components.TextInput

	last            *game.Result
	unlocked        []string
	showingFeedback bool
	confirmQuit     bool
	alert           string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz of deps.Questions questions in the given category.
func New(deps *screens.Deps, categoryKey string) *QuizScreen {
	q := game.Start(deps.Engine, categoryKey, deps.Questions, deps.QuizOptions())
	deps.Log().Info("quiz started",
		"quiz_id", q.ID,
		"category", q.Category.Key(),
		"questions", q.Len(),
		"difficulty", deps.Engine.Difficulty())

	return &QuizScreen{
		deps:        deps,
		categoryKey: categoryKey,
		quiz:        q,
		input:       newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("?", true, game.MaxAnswerLen)
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return s.deps.Text.CategoryName(s.quiz.Category.Key())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	if s.showingFeedback || s.confirmQuit {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y", "j", "J":
			s.confirmQuit = false
			return s, s.leave()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	// Feedback overlay: any key moves on.
	if s.showingFeedback {
		return s, s.next()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s, s.submit()
	}

	s.alert = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit judges the typed answer. Blank or unparsable input shows an alert
// and leaves the question open.
func (s *QuizScreen) submit() tea.Cmd {
	value, err := game.ParseAnswer(s.input.Value())
	if err != nil {
		s.alert = s.deps.Text.Text("Quiz_EnterAnswer_Message")
		return nil
	}

	res, err := s.quiz.Submit(value)
	if errors.Is(err, game.ErrQuizFinished) {
		return s.finish()
	}
	s.deps.Log().Debug("answer judged",
		"quiz_id", s.quiz.ID,
		"correct", res.Correct,
		"points", res.Total,
		"streak", res.Streak,
		"difficulty", res.Difficulty)

	s.last = &res
	s.unlocked = append(s.unlocked, res.Unlocked...)
	s.showingFeedback = true
	s.alert = ""
	return nil
}

// next leaves the feedback overlay for the following question, or the
// summary after the last one.
func (s *QuizScreen) next() tea.Cmd {
	s.showingFeedback = false
	if s.quiz.Done() {
		return s.finish()
	}
	s.input = newAnswerInput()
	return s.input.Init()
}

// finish records the quiz and swaps this screen for its summary.
func (s *QuizScreen) finish() tea.Cmd {
	stat, recorded := s.quiz.Finish()
	s.deps.Log().Info("quiz finished",
		"quiz_id", s.quiz.ID,
		"recorded", recorded,
		"correct", stat.CorrectAnswers,
		"answered", stat.TotalQuestions,
		"points", stat.PointsEarned)

	deps, key := s.deps, s.categoryKey
	next := summary.New(deps.Text, summary.Result{
		Stat:        stat,
		Planned:     s.quiz.Len(),
		TotalPoints: deps.Engine.Player().Points,
		Unlocked:    s.unlocked,
	}, func() screen.Screen { return New(deps, key) })

	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// leave records a quiz abandoned part way and returns to the caller.
func (s *QuizScreen) leave() tea.Cmd {
	stat, recorded := s.quiz.Finish()
	s.deps.Log().Info("quiz left early",
		"quiz_id", s.quiz.ID,
		"recorded", recorded,
		"answered", stat.TotalQuestions)
	return func() tea.Msg { return router.PopScreenMsg{} }
}
