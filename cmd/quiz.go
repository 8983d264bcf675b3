package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/config"
	"github.com/kaptenjon/mathquest/internal/engine"
	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play a quiz in plain line mode (no full-screen UI)",
	Long: `Ask questions one per line and read answers from standard input.

Progress is saved exactly as in the game. Type q to stop early; answers
given so far still count.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("category", "", "Category key, short name (addition) or localized name; defaults to the first for the grade")
	quizCmd.Flags().Int("count", 0, "Number of questions (defaults to MATHQUEST_QUESTIONS)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !rt.hasProfile {
		return errNoProfile
	}

	e := rt.engine
	t := rt.text
	catVal, _ := cmd.Flags().GetString("category")
	cat, err := resolveCategory(t, e.Categories(), catVal)
	if err != nil {
		return err
	}

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = rt.cfg.Questions
	}
	if count > config.MaxQuestions {
		return fmt.Errorf("--count must be at most %d", config.MaxQuestions)
	}

	quiz := game.Start(e, cat.Key(), count, game.Options{Sink: rt.writer, Cheers: t.Cheers})
	rt.logger.Info("quiz started", "category", cat.Key(), "count", count, "mode", "line")

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "%s (%s)\n\n", t.CategoryName(cat.Key()), t.Text("Label_Grade", e.Player().Grade))

	for !quiz.Done() {
		q, _ := quiz.Current()
		fmt.Fprintf(out, "── %s · %s · %s ──\n",
			t.Text("Quiz_Progress", quiz.Index()+1, quiz.Len()),
			t.Text("Quiz_Difficulty", e.Difficulty()),
			t.Text("Quiz_Streak", e.Streak()))
		fmt.Fprintln(out, q.Text)

		value, ok, quit := readAnswer(cmd, scanner, t)
		if quit {
			break
		}
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}

		res, err := quiz.Submit(value)
		if err != nil {
			return err
		}
		if res.Correct {
			fmt.Fprintf(out, "✓ %s %s\n", t.Text("Quiz_Correct", res.Total), res.Cheer)
		} else {
			fmt.Fprintf(out, "✗ %s %s\n", t.Text("Quiz_Wrong"), t.Text("Quiz_CorrectAnswer", game.FormatNumber(res.Question.Answer)))
		}
		for _, id := range res.Unlocked {
			fmt.Fprintln(out, t.Text("Quiz_Unlocked", player.AvatarIcon(id)+" "+player.AvatarName(id)))
		}
		fmt.Fprintln(out)
	}

	stat, recorded := quiz.Finish()
	rt.logger.Info("quiz finished",
		"category", stat.Category,
		"answered", stat.TotalQuestions,
		"correct", stat.CorrectAnswers,
		"recorded", recorded)

	fmt.Fprintln(out, t.Text("Quiz_Finished_Message", stat.CorrectAnswers, quiz.Len(), e.Player().Points))
	return nil
}

// readAnswer prompts until the input parses or the player quits. ok is
// false when stdin closes.
func readAnswer(cmd *cobra.Command, scanner *bufio.Scanner, t *i18n.Localizer) (value float64, ok, quit bool) {
	out := cmd.OutOrStdout()
	for {
		fmt.Fprint(out, t.Text("Quiz_Answer", ""))
		if !scanner.Scan() {
			return 0, false, false
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return 0, true, true
		}
		v, err := game.ParseAnswer(line)
		if errors.Is(err, game.ErrInvalidAnswer) {
			fmt.Fprintln(out, t.Text("Quiz_EnterAnswer_Message"))
			continue
		}
		return v, true, false
	}
}

// resolveCategory finds a category offered at the player's grade by key
// ("Category_Addition"), short name ("addition") or localized name. An
// empty value picks the first category for the grade.
func resolveCategory(t *i18n.Localizer, offered []engine.Category, val string) (engine.Category, error) {
	if len(offered) == 0 {
		return engine.Addition, errors.New("no categories for this grade")
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return offered[0], nil
	}
	for _, c := range offered {
		key := c.Key()
		short := strings.TrimPrefix(key, "Category_")
		if strings.EqualFold(val, key) || strings.EqualFold(val, short) || strings.EqualFold(val, t.CategoryName(key)) {
			return c, nil
		}
	}

	names := make([]string, len(offered))
	for i, c := range offered {
		names[i] = strings.ToLower(strings.TrimPrefix(c.Key(), "Category_"))
	}
	return engine.Addition, fmt.Errorf("category %q is not offered at this grade: choose one of %s",
		val, strings.Join(names, ", "))
}
