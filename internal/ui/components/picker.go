package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// Picker is a single-line selector cycled with the left and right keys.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker with the given option preselected. An
// out-of-range index selects the first option.
func NewPicker(label string, options []string, selected int) Picker {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Picker{
		Label:    label,
		Options:  options,
		Selected: selected,
	}
}

// Update moves the selection while focused. It wraps at both ends.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused || len(p.Options) == 0 {
		return p, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected - 1 + len(p.Options)) % len(p.Options)
	case "right", "l":
		p.Selected = (p.Selected + 1) % len(p.Options)
	}
	return p, nil
}

// Value returns the selected option, or "" when there are none.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders "Label  ◀ value ▶".
func (p Picker) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label)
	value := theme.Unselected.Render(p.Value())
	arrows := lipgloss.NewStyle().Foreground(theme.Border)
	if p.Focused {
		value = theme.Selected.Render(p.Value())
		arrows = arrows.Foreground(theme.ArcadeYellow)
	}
	return label + "  " + arrows.Render("◀ ") + value + arrows.Render(" ▶")
}
