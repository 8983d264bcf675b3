// Package theme holds the colors and shared styles of the terminal UI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette for young players: bright, high contrast on a dark background.
var (
	Primary   = lipgloss.Color("#A855F7") // grape
	Secondary = lipgloss.Color("#2DD4BF") // mint
	Accent    = lipgloss.Color("#FB923C") // tangerine
	Success   = lipgloss.Color("#4ADE80") // lime
	Error     = lipgloss.Color("#FB7185") // watermelon
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#111827")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#475569")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Card  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
	Alert = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 2)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Foreground(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(Border)
)

// streakColors warm up as the streak reaches the bonus steps 3, 5 and 7.
var streakColors = []struct {
	from  int
	color lipgloss.Style
}{
	{7, lipgloss.NewStyle().Foreground(Error).Bold(true)},
	{5, lipgloss.NewStyle().Foreground(Accent).Bold(true)},
	{3, lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true)},
}

// Streak returns the style for a streak counter.
func Streak(streak int) lipgloss.Style {
	for _, c := range streakColors {
		if streak >= c.from {
			return c.color
		}
	}
	return lipgloss.NewStyle().Foreground(TextDim)
}
