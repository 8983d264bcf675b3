package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/i18n"
	"github.com/kaptenjon/mathquest/internal/player"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics for the player",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !rt.hasProfile {
		return errNoProfile
	}

	p := rt.engine.Player()
	out := cmd.OutOrStdout()
	if len(p.Sessions) == 0 {
		fmt.Fprintln(out, rt.text.Text("Stats_NoData"))
		return nil
	}

	fmt.Fprintln(out, rt.text.Text("Main_WelcomeWithName", p.Name, p.Grade))
	fmt.Fprintln(out, rt.text.Text("Stats_Lessons", p.TotalLessons()))
	fmt.Fprintln(out, rt.text.Text("Stats_Points", p.Points))
	fmt.Fprintln(out, statsTable(rt.text, p, time.Now()))
	return nil
}

// statsTable renders the overall and windowed summaries as one table.
func statsTable(t *i18n.Localizer, p *player.Player, now time.Time) string {
	windows := []struct {
		key string
		sum player.Summary
	}{
		{"Stats_Overall", player.Summarize(p.Sessions)},
		{"Stats_Today", p.Today(now)},
		{"Stats_ThisWeek", p.Week(now)},
		{"Stats_ThisMonth", p.Month(now)},
	}

	rows := make([][]string, len(windows))
	for i, w := range windows {
		rows[i] = []string{
			t.Text(w.key),
			fmt.Sprint(w.sum.Sessions),
			fmt.Sprint(w.sum.Questions),
			fmt.Sprintf("%.0f%%", w.sum.Accuracy),
			fmt.Sprint(w.sum.Points),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("", "Sessions", "Questions", "Accuracy", "Points").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		}).
		String()
}
