package home

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/router"
	"github.com/kaptenjon/mathquest/internal/screen"
	"github.com/kaptenjon/mathquest/internal/screens"
	"github.com/kaptenjon/mathquest/internal/screens/history"
	"github.com/kaptenjon/mathquest/internal/screens/profile"
	"github.com/kaptenjon/mathquest/internal/screens/quiz"
	"github.com/kaptenjon/mathquest/internal/screens/stats"
	"github.com/kaptenjon/mathquest/internal/ui/components"
	"github.com/kaptenjon/mathquest/internal/ui/layout"
)

// streakCelebrate is the streak at which the mascot starts cheering.
const streakCelebrate = 3

// HomeScreen greets the player and lists the categories for their grade.
type HomeScreen struct {
	deps *screens.Deps
	menu components.Menu

	// menuFor is the grade and language the menu was built for; the menu
	// is rebuilt when either changes under it.
	menuFor string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screens.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return h.deps.Text.Text("Home_Title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.refresh()
	if _, ok := msg.(router.ResumedMsg); ok {
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// refresh rebuilds the menu after a grade or language change, keeping the
// selection when it is still in range.
func (h *HomeScreen) refresh() {
	p := h.deps.Engine.Player()
	key := strconv.Itoa(p.Grade) + "/" + h.deps.Text.Language().String()
	if key == h.menuFor {
		return
	}
	h.menuFor = key

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	deps := h.deps
	t := deps.Text
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	var items []components.MenuItem
	for _, c := range deps.Engine.Categories() {
		key := c.Key()
		items = append(items, components.MenuItem{
			Label:  t.CategoryName(key),
			Action: push(func() screen.Screen { return quiz.New(deps, key) }),
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  t.Text("Menu_Profile"),
			Action: push(func() screen.Screen { return profile.New(deps, nil) }),
		},
		components.MenuItem{
			Label:  t.Text("Menu_Stats"),
			Action: push(func() screen.Screen { return stats.New(deps) }),
		},
		components.MenuItem{
			Label:    t.Text("Menu_History"),
			Action:   push(func() screen.Screen { return history.New(deps) }),
			Disabled: deps.Events == nil,
		},
		components.MenuItem{
			Label:  t.Text("Menu_Quit"),
			Action: func() tea.Cmd { return tea.Quit },
		},
	)
	return items
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	t := h.deps.Text
	e := h.deps.Engine
	p := e.Player()

	// Bordered buttons take three lines each.
	compact := height < len(h.menu.Items)*3+16 || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	greeting := t.Text("Main_Welcome")
	if p.Name != "" {
		greeting = t.Text("Main_WelcomeWithName", p.Name, p.Grade)
	}

	next := t.Text("Main_AllUnlocked")
	if u, ok := player.NextUnlock(p.Points); ok {
		next = t.Text("Main_NextUnlock", u.Points)
	}

	variant := mascotFor(p, e.Streak())

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}
	sections = append(sections,
		renderGreeting(greeting, cw),
		renderStatsBar(statsBar{
			avatar: player.AvatarIcon(p.Avatar),
			points: t.Text("Main_Points", p.Points),
			streak: e.Streak(),
			next:   next,
		}, cw, compact),
		renderGreeting(t.Text("Main_PickChallenge"), cw),
		components.ArcadeMenu(h.menu, cw, compact),
	)

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}
