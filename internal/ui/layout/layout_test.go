package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Math Quest", "Home", HeaderStats{Points: 42, Streak: 3, Avatar: "🦊"}, 100)
	assert.Contains(t, h, "Math Quest")
	assert.Contains(t, h, "Home")
	assert.Contains(t, h, "★ 42")
	assert.Contains(t, h, "🔥 3")
	assert.Contains(t, h, "🦊")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Quit"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Submit")
	assert.Equal(t, FooterHeight, lipgloss.Height(f))
}

func TestSizes(t *testing.T) {
	assert.True(t, IsTooSmall(59, 30))
	assert.True(t, IsTooSmall(100, 19))
	assert.False(t, IsTooSmall(60, 20))
	assert.True(t, IsCompactWidth(99))
	assert.True(t, IsCompactHeight(29))
	assert.Equal(t, 18, ContentHeight(24))
	assert.Zero(t, ContentHeight(4))
}

func TestSpread_KeepsOneSpaceGaps(t *testing.T) {
	assert.Equal(t, "a b c", spread(0, "a", "b", "c"))
	assert.Equal(t, 20, lipgloss.Width(spread(20, "ab", "cd", "ef")))
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage("need %d×%d, have %d×%d", 50, 10)
	assert.Contains(t, out, "need 60×20, have 50×10")
}

func TestRenderFrame(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 40, 10)
	assert.True(t, strings.HasPrefix(frame, "head"))
	assert.Equal(t, 10, lipgloss.Height(frame))
}
