package domain

import "github.com/google/uuid"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigationRequested EventType = "NavigationRequested"
	EventPortalChanged       EventType = "PortalChanged"
	EventPaletteOpened       EventType = "PaletteOpened"
	EventPaletteClosed       EventType = "PaletteClosed"
	EventTenantSwitched      EventType = "TenantSwitched"
	EventThemeChanged        EventType = "ThemeChanged"
	EventSidebarToggled      EventType = "SidebarToggled"
	EventPrefsChanged        EventType = "PrefsChanged"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NavigationRequestedEvent is emitted when a route change is requested,
// either by the command palette or the sidebar. The ID correlates the
// request across the audit log.
type NavigationRequestedEvent struct {
	ID     uuid.UUID
	Path   string
	Portal Portal
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// PortalChangedEvent is emitted after the shell switches portals
type PortalChangedEvent struct {
	Portal Portal
}

func (e PortalChangedEvent) Type() EventType { return EventPortalChanged }

// PaletteOpenedEvent is emitted when the command palette opens
type PaletteOpenedEvent struct{}

func (e PaletteOpenedEvent) Type() EventType { return EventPaletteOpened }

// PaletteClosedEvent is emitted when the command palette closes
type PaletteClosedEvent struct{}

func (e PaletteClosedEvent) Type() EventType { return EventPaletteClosed }

// TenantSwitchedEvent is emitted when the active tenant changes
type TenantSwitchedEvent struct {
	Tenant Tenant
}

func (e TenantSwitchedEvent) Type() EventType { return EventTenantSwitched }

// ThemeChangedEvent is emitted when the theme changes
type ThemeChangedEvent struct {
	Theme string
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// SidebarToggledEvent is emitted when the sidebar is collapsed or expanded
type SidebarToggledEvent struct {
	Collapsed bool
}

func (e SidebarToggledEvent) Type() EventType { return EventSidebarToggled }

// PrefsChangedEvent is emitted when persisted UI preferences change and
// should be written through the prefs store
type PrefsChangedEvent struct {
	SidebarCollapsed bool
	Theme            string
	TenantID         string
}

func (e PrefsChangedEvent) Type() EventType { return EventPrefsChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
