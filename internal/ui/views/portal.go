package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer handles view rendering for the shell.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(theme string) *Renderer {
	return &Renderer{styles: NewStyles(theme)}
}

// SetTheme rebuilds the style set.
func (r *Renderer) SetTheme(theme string) {
	r.styles = NewStyles(theme)
}

// Styles exposes the active style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// PortalView is everything the content pane needs to render one portal.
// The body is informational only; portal data lives behind the backend API.
type PortalView struct {
	Glyph       string
	Title       string
	Description string
	Badge       string
	Keywords    []string
	Tenant      string
	Body        []string
	Width       int
	Height      int
}

// Portal renders the active portal's panel.
func (r *Renderer) Portal(v PortalView) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", v.Glyph, v.Title)
	if v.Badge != "" {
		title += " " + r.styles.Badge.Render("["+v.Badge+"]")
	}
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")

	if v.Tenant != "" {
		b.WriteString(r.styles.TenantTag.Render("tenant: " + v.Tenant))
		b.WriteString("\n\n")
	}

	if v.Description != "" {
		b.WriteString(r.styles.PanelBody.Render(v.Description))
		b.WriteString("\n\n")
	}

	for _, line := range v.Body {
		b.WriteString(r.styles.PanelBody.Render("  · " + line))
		b.WriteString("\n")
	}

	if len(v.Keywords) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("related: "))
		b.WriteString(r.styles.Keyword.Render(strings.Join(v.Keywords, ", ")))
	}

	width := v.Width - 4
	if width < 20 {
		width = 20
	}
	return r.styles.PanelBorder.Width(width).Render(b.String())
}

// StatusBar renders the bottom status line.
func (r *Renderer) StatusBar(portal, tenant, theme, message string, width int) string {
	left := fmt.Sprintf(" %s · %s · %s ", portal, tenant, theme)
	if message != "" {
		left += "· " + message + " "
	}
	hint := "ctrl+k palette · tab focus · ? help · q quit "

	bar := r.styles.Status.Render(left)
	right := r.styles.Dim.Render(hint)

	gap := width - lipgloss.Width(bar) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return bar + strings.Repeat(" ", gap) + right
}
