// Package layout draws the frame around every screen: a header bar with the
// player's points and streak, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kaptenjon/mathquest/internal/ui/theme"
)

const (
	// MinWidth and MinHeight fit the quiz screen with its feedback box.
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool { return width < CompactWidthThreshold }

func IsCompactHeight(height int) bool { return height < CompactHeightThreshold }

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for the screen body.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage centers msg, which is formatted with the minimum and
// current sizes, e.g. "need %d×%d, have %d×%d".
func RenderMinSizeMessage(msg string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Align(lipgloss.Center).
			Render(fmt.Sprintf(msg, MinWidth, MinHeight, width, height)))
}

// HeaderStats are the player figures shown on the right of the header.
type HeaderStats struct {
	Points int
	Streak int
	Avatar string // icon, may be empty
}

func (s HeaderStats) render() string {
	points := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("★ %d", s.Points))
	streak := theme.Streak(s.Streak).Render(fmt.Sprintf("🔥 %d", s.Streak))

	parts := []string{points, streak}
	if s.Avatar != "" {
		parts = append([]string{s.Avatar}, parts...)
	}
	return strings.Join(parts, "  ")
}

// RenderHeader renders the app name, the screen title centered, and the
// player's stats.
func RenderHeader(appName, title string, stats HeaderStats, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	return bar(width, spread(width-4, name, center, stats.render()))
}

// RenderFooter renders key hints on the left.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width, strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, sizing content to fill the
// remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}

// spread places left and right at the edges of inner columns with center
// in the middle. Gaps never shrink below one space.
func spread(inner int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
