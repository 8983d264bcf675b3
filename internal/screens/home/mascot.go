package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/player"
	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

// MascotVariant is the mood of Hoot, the owl on the home screen.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotNewcomer
	MascotCheering
	MascotProud
)

type mascot struct {
	art string
	fg  color.Color
}

var mascots = map[MascotVariant]mascot{
	MascotIdle: {
		art: ` ,___,
 (o,o)
 {"+"}
 -"-"-`,
		fg: theme.Primary,
	},
	MascotNewcomer: {
		art: ` ,___,  ?
 (O,O)
 {"="}
 -"-"-`,
		fg: theme.Accent,
	},
	MascotCheering: {
		art: `\,___,/
 (^,^)
 {"×"}
 -"-"-`,
		fg: theme.ArcadeYellow,
	},
	MascotProud: {
		art: ` ,_♛_,
 (-,-)
 {"÷"}
 -"-"-`,
		fg: theme.ArcadeCyan,
	},
}

// mascotFor picks the mood for p with the given answer streak. A missing
// profile wins over a streak, and a streak over a full avatar collection.
func mascotFor(p *player.Player, streak int) MascotVariant {
	switch {
	case p.Name == "":
		return MascotNewcomer
	case streak >= streakCelebrate:
		return MascotCheering
	}
	if _, ok := player.NextUnlock(p.Points); !ok {
		return MascotProud
	}
	return MascotIdle
}

// RenderMascot returns the art for variant in its color. Unknown variants
// render idle.
func RenderMascot(variant MascotVariant) string {
	m, ok := mascots[variant]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}
