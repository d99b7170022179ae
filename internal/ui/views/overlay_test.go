package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func grid(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestOverlayAtReplacesCoveredCells(t *testing.T) {
	base := grid(
		"..........",
		"..........",
		"..........",
		"..........",
	)

	got := OverlayAt(base, grid("AB", "CD"), 3, 1, 10, 4)

	require.Equal(t, grid(
		"..........",
		"...AB.....",
		"...CD.....",
		"..........",
	), got)
}

func TestOverlayAtClipsBelowBase(t *testing.T) {
	base := grid("....", "....")

	got := OverlayAt(base, grid("XX", "XX", "XX"), 0, 1, 4, 2)

	require.Equal(t, grid("....", "XX.."), got, "rows past the canvas are dropped")
}

func TestOverlayAtPadsShortBaseLines(t *testing.T) {
	base := grid("ab", "cd")

	got := OverlayAt(base, "ZZ", 4, 0, 8, 2)

	lines := strings.Split(got, "\n")
	require.Equal(t, "ab  ZZ  ", lines[0])
	require.Equal(t, "cd", lines[1], "untouched rows stay as they were")
}

func TestCenterOrigin(t *testing.T) {
	x, y := CenterOrigin(10, 4, 100, 40)
	require.Equal(t, 45, x)
	require.Equal(t, 18, y)

	x, y = CenterOrigin(200, 80, 100, 40)
	require.Zero(t, x, "oversized content pins to the origin")
	require.Zero(t, y)
}
