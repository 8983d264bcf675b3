package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/game"
	"github.com/kaptenjon/mathquest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent answers, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of answers to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = store.DefaultRecentAnswers
	}

	answers, err := rt.store.EventRepo().RecentAnswers(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(answers) == 0 {
		fmt.Fprintln(out, rt.text.Text("History_Empty"))
		return nil
	}

	rows := make([][]string, len(answers))
	for i, a := range answers {
		mark := "✓"
		if !a.Correct {
			mark = "✗"
		}
		rows[i] = []string{
			a.Timestamp.Format("2006-01-02 15:04"),
			rt.text.CategoryName(a.Category),
			a.QuestionText,
			game.FormatNumber(a.UserAnswer),
			game.FormatNumber(a.CorrectAnswer),
			mark,
			fmt.Sprintf("+%d", a.PointsAwarded),
		}
	}

	fmt.Fprintln(out, rt.text.Text("History_Title"))
	fmt.Fprintln(out, table.New().
		Border(lipgloss.NormalBorder()).
		Headers("When", "Category", "Question", "Given", "Answer", "", "Points").
		Rows(rows...).
		String())
	return nil
}
