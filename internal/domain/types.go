package domain

// Portal identifies one of the console's top-level areas.
type Portal string

const (
	PortalBilling       Portal = "billing"
	PortalDeployments   Portal = "deployments"
	PortalObservability Portal = "observability"
	PortalSettings      Portal = "settings"
	PortalUnknown       Portal = ""
)

// Section tags a command entry as a quick action or a navigation target.
type Section string

const (
	SectionActions    Section = "actions"
	SectionNavigation Section = "navigation"
)

// NavItem is a navigable destination supplied by configuration.
// Items are immutable at runtime; the registry rebuilds command entries
// from them, it never mutates them.
type NavItem struct {
	ID          string
	Label       string
	Path        string
	Icon        string
	Description string
	Badge       string
	Keywords    []string
}

// ActionItem has the same shape as NavItem but is semantically a command
// rather than a destination.
type ActionItem = NavItem

// CommandEntry is the normalized union of NavItem/ActionItem used by the
// palette matcher and view. Entries carry no identity beyond the slice
// they were built into.
type CommandEntry struct {
	Section     Section
	ID          string
	Label       string
	Path        string
	Icon        string
	Description string
	Badge       string
	Keywords    []string
}

// Tenant is an organization/tenant selectable in the console.
type Tenant struct {
	ID   string
	Name string
}
