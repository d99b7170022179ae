package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the help information with scrolling applied.
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	content := r.RenderHelpContentPlain()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 4
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	startLine := scrollOffset
	endLine := startLine + visibleHeight
	if endLine > totalLines {
		endLine = totalLines
	}
	visibleLines := lines[startLine:endLine]

	scrollStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = scrollStyle.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = scrollStyle.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}

// RenderHelpContentPlain generates the full help content.
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("opsdeck Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Command Palette"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Ctrl+K, :"), descStyle.Render("Open the command palette")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("↑/↓"), descStyle.Render("Move through results (wraps)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Enter"), descStyle.Render("Run the selected command")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Esc"), descStyle.Render("Close the palette")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move through the sidebar")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Enter"), descStyle.Render("Open the focused portal")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Tab"), descStyle.Render("Switch focus between sidebar and content")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Workspace"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render("Ctrl+B"), descStyle.Render("Collapse/expand the sidebar")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("t"), descStyle.Render("Switch tenant")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("T"), descStyle.Render("Toggle light/dark theme")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("L"), descStyle.Render("View application logs")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s        %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}

// showHelpInPagerCmd pages the full help text outside the alt screen.
func (m *Model) showHelpInPagerCmd() tea.Cmd {
	content := m.helpRenderer.RenderHelpContentPlain()
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowTextInPager(content)}
	}
}

// showLogsInPagerCmd pages the console's own log file.
func (m *Model) showLogsInPagerCmd() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.ShowFileInPager(path)}
	}
}
