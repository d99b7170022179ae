package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Sidebar         lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarActive   lipgloss.Style
	SidebarFocused  lipgloss.Style
	Badge           lipgloss.Style
	SectionHeader   lipgloss.Style
	PanelBorder     lipgloss.Style
	PanelBody       lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	StatusError     lipgloss.Style
	Help            lipgloss.Style
	HelpBox         lipgloss.Style
	Keyword         lipgloss.Style
	TenantTag       lipgloss.Style
}

// NewStyles creates the style set for a theme. Unknown themes render as dark.
func NewStyles(theme string) *Styles {
	accent := lipgloss.Color("99")
	text := lipgloss.Color("252")
	muted := lipgloss.Color("241")
	highlight := lipgloss.Color("238")
	if theme == "light" {
		accent = lipgloss.Color("55")
		text = lipgloss.Color("235")
		muted = lipgloss.Color("245")
		highlight = lipgloss.Color("254")
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(muted).
			PaddingRight(1),
		SidebarItem:    lipgloss.NewStyle().Foreground(text),
		SidebarActive:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		SidebarFocused: lipgloss.NewStyle().Background(highlight),
		Badge:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SectionHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(1, 2),
		PanelBody: lipgloss.NewStyle().Foreground(text),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(muted),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(muted),
		Keyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		TenantTag: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}
