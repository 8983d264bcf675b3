package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/screens/home"
	"github.com/kaptenjon/mathquest/internal/screens/profile"
	"github.com/kaptenjon/mathquest/internal/screens/welcome"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps *screens.Deps

	// NeedsProfile routes the first run through the profile form before
	// the home screen.
	NeedsProfile bool

	// SkipSplash starts directly on the first real screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *screens.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	deps := opts.Deps
	newHome := func() screen.Screen { return home.New(deps) }

	first := newHome
	if opts.NeedsProfile {
		first = func() screen.Screen {
			return profile.New(deps, func() tea.Cmd {
				h := newHome()
				return func() tea.Msg { return router.ReplaceScreenMsg{Screen: h} }
			})
		}
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = first()
	} else {
		initial = welcome.New(deps.Text, first)
	}
	return AppModel{
		deps:   deps,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.deps.Text.Text("App_TooSmall"), m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	e := m.deps.Engine
	p := e.Player()
	header := layout.RenderHeader(m.deps.Text.Text("App_Title"), title, layout.HeaderStats{
		Points: p.Points,
		Streak: e.Streak(),
		Avatar: avatarIcon(p),
	}, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func avatarIcon(p *player.Player) string {
	if p.Avatar == "" {
		return ""
	}
	return player.AvatarIcon(p.Avatar)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
