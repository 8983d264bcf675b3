package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// numericRunes are the characters accepted besides digits when NumericOnly
// is set: a sign and either decimal separator.
const numericRunes = "-.,"

// TextInput wraps bubbles/textinput. NumericOnly drops keys that cannot be
// part of a number before the model sees them.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok && !acceptsNumeric(kmsg.String()) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// acceptsNumeric reports whether a key may reach a numeric field. Named keys
// such as "backspace" or "left" always pass.
func acceptsNumeric(key string) bool {
	if len(key) != 1 {
		return key != "space"
	}
	c := key[0]
	return (c >= '0' && c <= '9') || strings.IndexByte(numericRunes, c) >= 0
}

// View renders the input, tinted with the focus color while focused.
func (t TextInput) View() string {
	if !t.Model.Focused() {
		return t.Model.View()
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

