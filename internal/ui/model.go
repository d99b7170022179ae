package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"opsdeck/internal/config"
	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
	"opsdeck/internal/palette"
	"opsdeck/internal/prefs"
	"opsdeck/internal/registry"
	"opsdeck/internal/router"
	"opsdeck/internal/ui/state"
	"opsdeck/internal/ui/views"
)

// EventMsg wraps a domain event forwarded from the bus into the program.
type EventMsg struct {
	Event eventbus.DomainEvent
}

// focusManager adapts the shell's focus field to the palette's focus
// primitive.
type focusManager struct {
	state *state.AppState
}

func (f *focusManager) Current() palette.FocusToken {
	return f.state.Focus
}

func (f *focusManager) Restore(tok palette.FocusToken) {
	if focus, ok := tok.(state.Focus); ok {
		f.state.Focus = focus
	}
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	state  *state.AppState
	log    *zap.Logger

	router     *router.Router
	palette    *palette.Model
	prefsStore prefs.Store

	// paletteOpen mirrors the palette's open flag; kept in sync through
	// the onClose callback.
	paletteOpen bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *PagerOps
	logPath      string

	// navEntries is the sidebar's view of the registry, cached at startup.
	navEntries []domain.CommandEntry

	// paletteX/Y is where the palette overlay was last drawn, for mapping
	// pointer clicks back onto result rows.
	paletteX, paletteY int

	program *tea.Program
}

// NewModel creates the shell model. Prefs have already been loaded by the
// caller and win over config defaults where set.
func NewModel(cfg *config.Config, reg *registry.Registry, rtr *router.Router, store prefs.Store, bus eventbus.EventBus, logger *zap.Logger, logPath string, p prefs.Prefs) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	appState.Tenants = cfg.TenantList()
	appState.Theme = cfg.UISettings.Theme
	appState.SidebarCollapsed = cfg.UISettings.SidebarCollapsed
	if p.Theme != "" {
		appState.Theme = p.Theme
	}
	appState.SidebarCollapsed = p.SidebarCollapsed || appState.SidebarCollapsed
	if p.TenantID != "" {
		appState.SelectTenant(p.TenantID)
	}

	m := &Model{
		bus:          bus,
		cfg:          cfg,
		state:        appState,
		log:          logger,
		router:       rtr,
		prefsStore:   store,
		renderer:     views.NewRenderer(appState.Theme),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		logPath:      logPath,
		navEntries:   reg.NavigationEntries(),
	}

	m.palette = palette.New(reg.Entries(), rtr, &focusManager{state: appState}, func() {
		m.paletteOpen = false
		bus.Publish(eventbus.PaletteClosedEvent{})
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.palette.SetWidth(paletteWidth(msg.Width))
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerDoneMsg:
		if msg.err != nil {
			m.state.StatusMessage = "pager: " + msg.err.Error()
			m.log.Warn("pager failed", zap.Error(msg.err))
		}
		return m, nil

	case tea.MouseMsg:
		if m.paletteOpen && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// +1 skips the palette's top border line
			m.palette.ClickLine(msg.Y - m.paletteY - 1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		if m.paletteOpen {
			return m, m.palette.Update(msg)
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.state.ShowHelp = false
			m.state.HelpScrollOffset = 0
		case "j", "down":
			m.state.HelpScrollOffset++
		case "k", "up":
			if m.state.HelpScrollOffset > 0 {
				m.state.HelpScrollOffset--
			}
		case "enter":
			// Full help in the pager, without the overlay's scroll window
			m.state.ShowHelp = false
			m.state.HelpScrollOffset = 0
			return m, m.showHelpInPagerCmd()
		}
		return m, nil
	}

	if m.paletteOpen {
		return m, m.palette.Update(msg)
	}

	switch msg.String() {
	case "ctrl+k", ":":
		m.paletteOpen = true
		m.bus.Publish(eventbus.PaletteOpenedEvent{})
		return m, m.palette.Open()

	case "ctrl+b":
		collapsed := m.state.ToggleSidebar()
		m.bus.Publish(eventbus.SidebarToggledEvent{Collapsed: collapsed})
		m.savePrefs()
		return m, nil

	case "t":
		tenant := m.state.CycleTenant()
		m.bus.Publish(eventbus.TenantSwitchedEvent{Tenant: tenant})
		m.savePrefs()
		return m, nil

	case "T":
		if m.state.Theme == "dark" {
			m.state.Theme = "light"
		} else {
			m.state.Theme = "dark"
		}
		m.renderer.SetTheme(m.state.Theme)
		m.bus.Publish(eventbus.ThemeChangedEvent{Theme: m.state.Theme})
		m.savePrefs()
		return m, nil

	case "tab":
		if m.state.Focus.Pane == state.PaneSidebar {
			m.state.Focus.Pane = state.PaneContent
		} else {
			m.state.Focus.Pane = state.PaneSidebar
		}
		return m, nil

	case "j", "down":
		if m.state.Focus.Pane == state.PaneSidebar && len(m.navEntries) > 0 {
			m.state.Focus.Index = (m.state.Focus.Index + 1) % len(m.navEntries)
		}
		return m, nil

	case "k", "up":
		if m.state.Focus.Pane == state.PaneSidebar && len(m.navEntries) > 0 {
			m.state.Focus.Index = (m.state.Focus.Index - 1 + len(m.navEntries)) % len(m.navEntries)
		}
		return m, nil

	case "enter":
		if m.state.Focus.Pane == state.PaneSidebar && m.state.Focus.Index < len(m.navEntries) {
			m.router.Navigate(m.navEntries[m.state.Focus.Index].Path)
		}
		return m, nil

	case "?":
		m.state.ShowHelp = true
		return m, nil

	case "L":
		return m, m.showLogsInPagerCmd()

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch ev := event.(type) {
	case eventbus.NavigationRequestedEvent:
		if ev.Path == "/logs" {
			return m.showLogsInPagerCmd()
		}
		if ev.Portal == domain.PortalUnknown {
			m.state.StatusMessage = fmt.Sprintf("no portal registered for %s", ev.Path)
			return nil
		}
		m.state.ActivePortal = ev.Portal
		m.state.Focus = state.Focus{Pane: state.PaneContent}
		m.syncSidebarIndex(ev.Portal)
		if strings.Count(strings.Trim(ev.Path, "/"), "/") > 0 {
			m.state.StatusMessage = "opened " + ev.Path
		} else {
			m.state.StatusMessage = ""
		}
		m.bus.Publish(eventbus.PortalChangedEvent{Portal: ev.Portal})
		return nil

	case eventbus.ErrorEvent:
		m.state.StatusMessage = ev.Message
		return nil
	}
	return nil
}

// syncSidebarIndex points the sidebar cursor at the entry for the portal.
func (m *Model) syncSidebarIndex(portal domain.Portal) {
	for i, e := range m.navEntries {
		if router.Resolve(e.Path) == portal {
			m.state.Focus.Index = i
			return
		}
	}
}

// savePrefs writes persisted UI state through the injected store.
func (m *Model) savePrefs() {
	p := prefs.Prefs{
		SidebarCollapsed: m.state.SidebarCollapsed,
		Theme:            m.state.Theme,
		TenantID:         m.state.ActiveTenant().ID,
	}
	if err := m.prefsStore.Save(p); err != nil {
		m.state.StatusMessage = "failed to save preferences"
		m.log.Warn("prefs save failed", zap.Error(err))
		return
	}
	m.bus.Publish(eventbus.PrefsChangedEvent{
		SidebarCollapsed: p.SidebarCollapsed,
		Theme:            p.Theme,
		TenantID:         p.TenantID,
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	contentHeight := m.state.Height - 1
	if contentHeight < 3 {
		contentHeight = 3
	}

	sidebar := m.renderer.Sidebar(m.sidebarItems(), m.state.SidebarCollapsed,
		m.state.Focus.Pane == state.PaneSidebar, contentHeight)

	portalView := m.portalView()
	portalView.Width = m.state.Width - lipgloss.Width(sidebar)
	portalView.Height = contentHeight
	content := m.renderer.Portal(portalView)

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	status := m.renderer.StatusBar(string(m.state.ActivePortal),
		m.state.ActiveTenant().Name, m.state.Theme, m.state.StatusMessage, m.state.Width)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(contentHeight).Render(main), status)

	if m.state.ShowHelp {
		box := m.renderer.Styles().HelpBox.Render(
			m.helpRenderer.renderHelpContent(contentHeight, m.state.HelpScrollOffset))
		x, y := views.CenterOrigin(lipgloss.Width(box), lipgloss.Height(box), m.state.Width, m.state.Height)
		screen = views.OverlayAt(screen, box, x, y, m.state.Width, m.state.Height)
	}

	if m.paletteOpen {
		box := m.palette.View()
		w := lipgloss.Width(box)
		m.paletteX = (m.state.Width - w) / 2
		if m.paletteX < 0 {
			m.paletteX = 0
		}
		m.paletteY = 2 // palettes sit near the top, not centered vertically
		screen = views.OverlayAt(screen, box, m.paletteX, m.paletteY, m.state.Width, m.state.Height)
	}

	return screen
}

// paletteWidth sizes the palette box against the terminal width.
func paletteWidth(termWidth int) int {
	w := 64
	if termWidth-8 < w {
		w = termWidth - 8
	}
	if w < 24 {
		w = 24
	}
	return w
}

// sidebarItems maps registry navigation entries to sidebar rows.
func (m *Model) sidebarItems() []views.SidebarItem {
	items := make([]views.SidebarItem, 0, len(m.navEntries))
	for i, e := range m.navEntries {
		label := strings.TrimPrefix(e.Label, "Go to ")
		items = append(items, views.SidebarItem{
			Glyph:   e.Icon,
			Label:   label,
			Badge:   e.Badge,
			Active:  router.Resolve(e.Path) == m.state.ActivePortal,
			Focused: i == m.state.Focus.Index,
		})
	}
	return items
}

// portalView assembles the content pane data for the active portal.
func (m *Model) portalView() views.PortalView {
	v := views.PortalView{
		Tenant: m.state.ActiveTenant().Name,
	}

	for _, e := range m.navEntries {
		if router.Resolve(e.Path) == m.state.ActivePortal {
			v.Glyph = e.Icon
			v.Title = strings.TrimPrefix(e.Label, "Go to ")
			v.Description = e.Description
			v.Badge = e.Badge
			v.Keywords = e.Keywords
			break
		}
	}

	switch m.state.ActivePortal {
	case domain.PortalBilling:
		v.Body = []string{
			"Invoices and credit notes for the active tenant",
			"Dunning campaign status and payment retries",
			"Payment methods and billing contacts",
		}
	case domain.PortalDeployments:
		v.Body = []string{
			"Active rollouts per environment",
			"Release history and rollback points",
			"Deployment pipelines and approvals",
		}
	case domain.PortalObservability:
		v.Body = []string{
			"Service health and golden-signal dashboards",
			"Open alerts and silences",
			"Log and trace explorers",
		}
	case domain.PortalSettings:
		v.Body = []string{
			"Members, roles and invitations",
			"Tenant configuration",
			"API keys and integrations",
		}
	}

	return v
}
