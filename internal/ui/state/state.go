package state

import (
	"opsdeck/internal/domain"
)

// Pane identifies which part of the shell owns keyboard focus.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneContent
)

// Focus is the shell's focused-element snapshot. The palette captures it
// on open and restores it on close.
type Focus struct {
	Pane  Pane
	Index int
}

// AppState contains all the application state
type AppState struct {
	// Portal and tenant
	ActivePortal domain.Portal
	Tenants      []domain.Tenant
	TenantIndex  int

	// UI state
	SidebarCollapsed bool
	Theme            string
	Focus            Focus
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
	Width            int
	Height           int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ActivePortal: domain.PortalBilling,
		Theme:        "dark",
	}
}

// ActiveTenant returns the currently selected tenant, or a zero tenant if
// none are configured.
func (s *AppState) ActiveTenant() domain.Tenant {
	if len(s.Tenants) == 0 {
		return domain.Tenant{}
	}
	if s.TenantIndex < 0 || s.TenantIndex >= len(s.Tenants) {
		return s.Tenants[0]
	}
	return s.Tenants[s.TenantIndex]
}

// CycleTenant advances to the next tenant, wrapping around.
func (s *AppState) CycleTenant() domain.Tenant {
	if len(s.Tenants) == 0 {
		return domain.Tenant{}
	}
	s.TenantIndex = (s.TenantIndex + 1) % len(s.Tenants)
	return s.Tenants[s.TenantIndex]
}

// SelectTenant activates the tenant with the given ID, if present.
func (s *AppState) SelectTenant(id string) bool {
	for i, t := range s.Tenants {
		if t.ID == id {
			s.TenantIndex = i
			return true
		}
	}
	return false
}

// ToggleSidebar flips the sidebar collapse state and returns the new value.
func (s *AppState) ToggleSidebar() bool {
	s.SidebarCollapsed = !s.SidebarCollapsed
	return s.SidebarCollapsed
}
