package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

const bannerArt = `╔╦╗╔═╗╔╦╗╦ ╦  ╔═╗ ╦ ╦╔═╗╔═╗╔╦╗
║║║╠═╣ ║ ╠═╣  ║═╬╗║ ║║╣ ╚═╗ ║
╩ ╩╩ ╩ ╩ ╩ ╩  ╚═╝╚╚═╝╚═╝╚═╝ ╩`

const bannerCompact = "M A T H   Q U E S T"

// compactBelow is the narrowest width that fits bannerArt with a margin.
const compactBelow = 40

// RenderBanner returns the title banner, one line per art row. Narrow
// terminals get a single spaced-out line.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < compactBelow {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
