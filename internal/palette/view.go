package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"opsdeck/internal/domain"
)

// View styling. The palette carries its own styles so it renders the same
// regardless of the shell theme.
var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// sectionTitles in display order; matches the matcher's partition order.
var sectionTitles = []struct {
	section domain.Section
	title   string
}{
	{domain.SectionActions, "Actions"},
	{domain.SectionNavigation, "Navigation"},
}

// View renders the palette box. Content lines are tracked in rowToResult
// so ClickLine can map a pointer position back to a result.
func (m *Model) View() string {
	if !m.open {
		return ""
	}

	width := m.width
	if width < 30 {
		width = 60
	}
	inner := width - 4 // border and padding

	var lines []string
	m.rowToResult = m.rowToResult[:0]

	addLine := func(s string, result int) {
		lines = append(lines, s)
		m.rowToResult = append(m.rowToResult, result)
	}

	addLine(m.input.View(), -1)
	addLine("", -1)

	if len(m.results) == 0 {
		addLine(emptyStyle.Render(fmt.Sprintf("No results found for %q", m.applied)), -1)
	} else {
		idx := 0
		for _, st := range sectionTitles {
			first := true
			for ; idx < len(m.results) && m.results[idx].Section == st.section; idx++ {
				if first {
					addLine(sectionStyle.Render(st.title), -1)
					first = false
				}
				addLine(m.renderRow(m.results[idx], idx == m.selected, inner), idx)
			}
		}
	}

	addLine("", -1)
	addLine(dimStyle.Render("↑/↓ navigate · enter select · esc close"), -1)

	content := strings.Join(lines, "\n")
	return boxStyle.Width(width - 2).Render(content)
}

func (m *Model) renderRow(e domain.CommandEntry, selected bool, width int) string {
	badge := ""
	if e.Badge != "" {
		badge = " " + badgeStyle.Render("["+e.Badge+"]")
	}
	row := fmt.Sprintf("  %s %s%s", e.Icon, e.Label, badge)
	if e.Description != "" {
		row += dimStyle.Render(" - " + e.Description)
	}
	if w := lipgloss.Width(row); w < width {
		row += strings.Repeat(" ", width-w)
	}
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}
