package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typed(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "one"},
		{Label: "locked too", Disabled: true},
		{Label: "two"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 1, m.Selected, "wraps to the top")
	m, _ = m.Update(press(tea.KeyUp))
	assert.Equal(t, 3, m.Selected, "wraps to the bottom")
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b", Disabled: true}})
	assert.Equal(t, 0, m.Selected)
	m, cmd := m.Update(press(tea.KeyEnter))
	assert.Nil(t, cmd)
	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_DigitShortcut(t *testing.T) {
	picked := ""
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			picked = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("add"), {Label: "off", Disabled: true}, item("sub")})

	m, _ = m.Update(typed('3'))
	assert.Equal(t, 2, m.Selected)
	assert.Equal(t, "sub", picked)

	picked = ""
	m, _ = m.Update(typed('2'))
	assert.Equal(t, 2, m.Selected, "disabled items ignore shortcuts")
	m, _ = m.Update(typed('9'))
	assert.Empty(t, picked)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(press(tea.KeyEnter))
	assert.True(t, ran)
	assert.Equal(t, []string{"go"}, m.Labels())
	assert.Contains(t, ArcadeMenu(m, 40, false), "▸ go")
	assert.Contains(t, ArcadeMenu(m, 40, true), "▸ go")
}

func TestPicker_Wraps(t *testing.T) {
	p := NewPicker("Grade", []string{"0", "1", "2"}, 7)
	assert.Equal(t, "0", p.Value())

	p, _ = p.Update(press(tea.KeyRight))
	assert.Equal(t, "0", p.Value(), "unfocused picker ignores keys")

	p.Focused = true
	p, _ = p.Update(press(tea.KeyLeft))
	assert.Equal(t, "2", p.Value())
	p, _ = p.Update(press(tea.KeyRight))
	assert.Equal(t, "0", p.Value())
	assert.Contains(t, p.View(), "Grade")
}

func TestPicker_Empty(t *testing.T) {
	p := NewPicker("x", nil, 0)
	p.Focused = true
	p, _ = p.Update(press(tea.KeyRight))
	assert.Empty(t, p.Value())
}

func TestTextInput_NumericFilter(t *testing.T) {
	in := NewTextInput("", true, 12)
	for _, r := range "-3a,5 x" {
		in, _ = in.Update(typed(r))
	}
	assert.Equal(t, "-3,5", in.Value())

	in, _ = in.Update(press(tea.KeyBackspace))
	assert.Equal(t, "-3,", in.Value())
}

func TestTextInput_FreeText(t *testing.T) {
	in := NewTextInput("", false, 20)
	for _, r := range "Ada" {
		in, _ = in.Update(typed(r))
	}
	assert.Equal(t, "Ada", in.Value())

	in.SetValue("Bo")
	assert.Equal(t, "Bo", in.Value())
}

func TestProgressBar_Clamps(t *testing.T) {
	full := NewProgressBar("", 1.5, true, 20).View()
	assert.Contains(t, full, "150%")
	assert.NotContains(t, NewProgressBar("Q", 0, false, 20).View(), "%")
	assert.True(t, strings.Contains(NewProgressBar("Q", 0.5, false, 20).View(), "Q"))
}
