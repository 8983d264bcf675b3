package profile

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/text/language/display"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// MaxNameLen caps the player name input.
const MaxNameLen = 20

const (
	fieldName = iota
	fieldGrade
	fieldAvatar
	fieldLanguage
	fieldCount
)

// ProfileScreen edits the player's name, grade, avatar and language.
// Saving re-initializes the player, which resets difficulty and streak.
type ProfileScreen struct {
	deps   *screens.Deps
	onSave func() tea.Cmd

	name     components.TextInput
	grade    components.Picker
	avatar   components.Picker
	language components.Picker

	avatarIDs []string
	langTags  []string // "" is the system language

	focus int
	alert string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a profile form prefilled from the current player. onSave
// runs after a successful save; nil pops the screen.
func New(deps *screens.Deps, onSave func() tea.Cmd) *ProfileScreen {
	if onSave == nil {
		onSave = func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	t := deps.Text
	p := deps.Engine.Player()

	s := &ProfileScreen{deps: deps, onSave: onSave}

	s.name = components.NewTextInput(t.Text("Placeholder_PlayerName"), false, MaxNameLen)
	s.name.SetValue(p.Name)

	grades := make([]string, 0, player.MaxGrade-player.MinGrade+1)
	for g := player.MinGrade; g <= player.MaxGrade; g++ {
		grades = append(grades, strconv.Itoa(g))
	}
	s.grade = components.NewPicker(t.Text("Label_ChooseGrade"), grades, p.Grade-player.MinGrade)

	s.avatarIDs = p.AllAvatars()
	avatarLabels := make([]string, len(s.avatarIDs))
	selected := 0
	for i, id := range s.avatarIDs {
		avatarLabels[i] = player.AvatarIcon(id) + " " + player.AvatarName(id)
		if id == p.Avatar {
			selected = i
		}
	}
	s.avatar = components.NewPicker(t.Text("Label_PickAvatar"), avatarLabels, selected)

	s.langTags = []string{""}
	langLabels := []string{t.Text("Option_SystemLanguage")}
	selected = 0
	for _, tag := range t.Supported() {
		s.langTags = append(s.langTags, tag.String())
		langLabels = append(langLabels, display.Self.Name(tag))
		if p.Language == tag.String() || strings.HasPrefix(p.Language, tag.String()+"-") {
			selected = len(s.langTags) - 1
		}
	}
	s.language = components.NewPicker(t.Text("Label_Language"), langLabels, selected)

	s.setFocus(fieldName)
	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *ProfileScreen) Title() string {
	return s.deps.Text.Text("Profile_Title")
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.name, cmd = s.name.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		return s, s.save()
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.alert = ""
		s.name, cmd = s.name.Update(msg)
	case fieldGrade:
		s.grade, cmd = s.grade.Update(msg)
	case fieldAvatar:
		s.avatar, cmd = s.avatar.Update(msg)
	case fieldLanguage:
		s.language, cmd = s.language.Update(msg)
	}
	return s, cmd
}

func (s *ProfileScreen) setFocus(field int) tea.Cmd {
	s.focus = field
	s.grade.Focused = field == fieldGrade
	s.avatar.Focused = field == fieldAvatar
	s.language.Focused = field == fieldLanguage
	if field == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

// save applies the form. A blank name keeps the form open with an alert.
func (s *ProfileScreen) save() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		s.alert = s.deps.Text.Text("Alert_NameRequired_Message")
		return s.setFocus(fieldName)
	}

	grade, _ := strconv.Atoi(s.grade.Value())
	avatar := s.avatarIDs[s.avatar.Selected]
	lang := s.langTags[s.language.Selected]

	e := s.deps.Engine
	e.SetPlayer(name, grade, avatar)
	p := e.Player()
	p.Language = lang
	s.deps.Text.SetLanguage(lang)
	if s.deps.Sink != nil {
		s.deps.Sink.SavePlayer(p)
	}
	s.deps.Log().Info("profile saved", "grade", p.Grade, "avatar", p.Avatar, "language", lang)

	return s.onSave()
}

func (s *ProfileScreen) View(width, height int) string {
	t := s.deps.Text
	cw := components.ContentWidth(width)

	nameLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Text("Label_PlayerName"))
	nameLine := nameLabel + "  " + s.name.View()
	if s.focus == fieldName {
		nameLine = theme.Selected.Render("▸ ") + nameLine
	} else {
		nameLine = "  " + nameLine
	}

	lines := []string{
		theme.Title.Width(cw).Render(t.Text("Profile_Title")),
		"",
		nameLine,
		"",
		s.marker(fieldGrade) + s.grade.View(),
		"",
		s.marker(fieldAvatar) + s.avatar.View(),
		"",
		s.marker(fieldLanguage) + s.language.View(),
	}
	if s.alert != "" {
		lines = append(lines, "",
			theme.Alert.Render(t.Text("Alert_NameRequired_Title")+"  "+s.alert))
	}
	button := t.Text("Button_Save")
	if s.deps.Engine.Player().Name == "" {
		button = t.Text("Button_Start")
	}
	lines = append(lines, "", components.ArcadeButton(button, true, components.ButtonWidth))

	form := lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (s *ProfileScreen) marker(field int) string {
	if s.focus == field {
		return theme.Selected.Render("▸ ")
	}
	return "  "
}
