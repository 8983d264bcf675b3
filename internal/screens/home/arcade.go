package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// Block-letter title (same art as the welcome banner).
const arcadeTitleFull = `╔╦╗╔═╗╔╦╗╦ ╦  ╔═╗ ╦ ╦╔═╗╔═╗╔╦╗
║║║╠═╣ ║ ╠═╣  ║═╬╗║ ║║╣ ╚═╗ ║
╩ ╩╩ ╩ ╩ ╩ ╩  ╚═╝╚╚═╝╚═╝╚═╝ ╩`

const arcadeTitleCompact = "M · A · T · H   Q · U · E · S · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderGreeting renders the welcome line under the title.
func renderGreeting(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(text)
}

// statsBar holds the figures shown in the dashboard box.
type statsBar struct {
	avatar string
	points string
	streak int
	next   string
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s statsBar, cw int, compact bool) string {
	pointStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := fmt.Sprintf("%s  %s  %s",
		s.avatar,
		pointStyle.Render("★ "+s.points),
		streakStyle.Render(fmt.Sprintf("🔥 %d", s.streak)))
	if !compact {
		line += "\n" + dimStyle.Render(s.next)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
