package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SidebarItem is one row of the portal sidebar, precomputed by the shell.
type SidebarItem struct {
	Glyph   string
	Label   string
	Badge   string
	Active  bool
	Focused bool
}

// Sidebar renders the portal list. Collapsed mode shows glyphs only.
func (r *Renderer) Sidebar(items []SidebarItem, collapsed, paneFocused bool, height int) string {
	var lines []string
	lines = append(lines, r.styles.Title.Render("opsdeck"))

	for _, it := range items {
		var row string
		if collapsed {
			row = " " + it.Glyph + " "
		} else {
			row = " " + it.Glyph + "  " + it.Label
			if it.Badge != "" {
				row += " " + r.styles.Badge.Render("["+it.Badge+"]")
			}
		}

		switch {
		case it.Active:
			row = r.styles.SidebarActive.Render(row)
		default:
			row = r.styles.SidebarItem.Render(row)
		}
		if it.Focused && paneFocused {
			row = r.styles.SidebarFocused.Render(row)
		}
		lines = append(lines, row)
	}

	content := strings.Join(lines, "\n")
	return r.styles.Sidebar.Height(max(height, lipgloss.Height(content))).Render(content)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
