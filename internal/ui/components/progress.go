package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

const (
	fillGlyph  = "█"
	emptyGlyph = "░"

	// minBarCells keeps a bar visible when the label eats the width.
	minBarCells = 4
)

// ProgressBar is a one-line bar with an optional label and percentage.
// Percent is a fraction; the bar is clamped to [0, 1] but the printed
// percentage is not.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	var prefix, suffix string
	if p.Label != "" {
		prefix = theme.Body.Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	cells := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix), minBarCells)
	filled := min(max(int(float64(cells)*p.Percent), 0), cells)

	return prefix +
		theme.ProgressFilled.Render(strings.Repeat(fillGlyph, filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(emptyGlyph, cells-filled)) +
		suffix
}
