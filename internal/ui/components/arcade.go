package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// ButtonWidth is the fixed width of menu buttons.
const ButtonWidth = 24

const (
	maxContentWidth = 60
	minContentWidth = 20
)

// ContentWidth returns the shared inner width for cards and menus inside a
// frame of frameWidth columns, leaving room for the cabinet border and
// padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// CabinetFrame centers content inside a double border filling the area.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a centered card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return theme.Card.Width(cw - 2).Align(lipgloss.Center).Render(content)
}

type buttonState int

const (
	buttonIdle buttonState = iota
	buttonSelected
	buttonDisabled
)

func buttonStyle(state buttonState, width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)

	switch state {
	case buttonSelected:
		return s.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	case buttonDisabled:
		return s.Foreground(theme.TextDim)
	}
	return s
}

// ArcadeButton renders a bordered button; the selected one is highlighted
// and marked with "▸".
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return buttonStyle(buttonSelected, width).Render("▸ " + label)
	}
	return buttonStyle(buttonIdle, width).Render(label)
}

// ArcadeMenu renders m as a column of buttons centered in cw. Compact mode
// uses one plain line per item for short terminals.
func ArcadeMenu(m Menu, cw int, compact bool) string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		state := buttonIdle
		switch {
		case item.Disabled:
			state = buttonDisabled
		case i == m.Selected:
			state = buttonSelected
		}

		if compact {
			lines[i] = compactLine(item.Label, state)
			continue
		}
		label := item.Label
		if state == buttonSelected {
			label = "▸ " + label
		}
		lines[i] = buttonStyle(state, ButtonWidth).Render(label)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func compactLine(label string, state buttonState) string {
	switch state {
	case buttonSelected:
		return lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true).
			Render(" ▸ " + label + " ")
	case buttonDisabled:
		return theme.Hint.Render("   " + label)
	}
	return theme.Unselected.Render("   " + label)
}
