package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agnivade/levenshtein"
	"github.com/pelletier/go-toml/v2"

	"opsdeck/internal/domain"
	"opsdeck/internal/eventbus"
)

// DefaultFileName is the config file looked up in the workspace directory.
const DefaultFileName = "opsdeck.toml"

// Themes the console ships with.
var KnownThemes = []string{"dark", "light"}

// Item is the TOML representation of a navigation or action entry.
type Item struct {
	ID          string   `toml:"id"`
	Label       string   `toml:"label"`
	Path        string   `toml:"path"`
	Icon        string   `toml:"icon"`
	Description string   `toml:"description,omitempty"`
	Badge       string   `toml:"badge,omitempty"`
	Keywords    []string `toml:"keywords,omitempty"`
}

// Tenant is the TOML representation of a selectable tenant.
type Tenant struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// UISettings represents UI-related configuration defaults. Runtime changes
// are persisted separately through the prefs store.
type UISettings struct {
	Theme            string `toml:"theme"`
	SidebarCollapsed bool   `toml:"sidebar_collapsed"`
	ShowBadges       bool   `toml:"show_badges"`
}

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	UISettings UISettings `toml:"ui"`
	Tenants    []Tenant   `toml:"tenants"`
	Navigation []Item     `toml:"navigation"`
	Actions    []Item     `toml:"actions"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "opsdeck")
	_ = os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, DefaultFileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: ""})
		}
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the config for values the console cannot work with.
// Near-miss names get a "did you mean" hint.
func Validate(cfg *Config) error {
	if cfg.UISettings.Theme != "" && !contains(KnownThemes, cfg.UISettings.Theme) {
		return fmt.Errorf("unknown theme %q%s", cfg.UISettings.Theme, Suggest(cfg.UISettings.Theme, KnownThemes))
	}

	seen := make(map[string]bool)
	for _, item := range append(append([]Item{}, cfg.Actions...), cfg.Navigation...) {
		if item.ID == "" {
			return fmt.Errorf("entry %q is missing an id", item.Label)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate entry id %q", item.ID)
		}
		seen[item.ID] = true
		if item.Path == "" {
			return fmt.Errorf("entry %q is missing a path", item.ID)
		}
	}

	return nil
}

// Suggest returns a ` (did you mean %q?)` hint when input is within edit
// distance 3 of a candidate, or an empty string otherwise.
func Suggest(input string, candidates []string) string {
	best := ""
	bestDist := 4
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(input, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfig returns the built-in registry used when no config file
// exists, covering the four portals and the standard quick actions.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Theme:      "dark",
			ShowBadges: true,
		},
		Tenants: []Tenant{
			{ID: "acme", Name: "Acme Corp"},
			{ID: "initech", Name: "Initech"},
		},
		Navigation: []Item{
			{
				ID:          "billing",
				Label:       "Go to Billing",
				Path:        "/billing",
				Icon:        "billing",
				Description: "Invoices, dunning campaigns and payment methods",
				Keywords:    []string{"invoices", "payments", "dunning"},
			},
			{
				ID:          "deployments",
				Label:       "Go to Deployments",
				Path:        "/deployments",
				Icon:        "deploy",
				Description: "Releases, environments and rollout status",
				Keywords:    []string{"releases", "environments", "rollouts"},
			},
			{
				ID:          "observability",
				Label:       "Go to Observability",
				Path:        "/observability",
				Icon:        "chart",
				Description: "Dashboards, alerts and service health",
				Keywords:    []string{"metrics", "alerts", "dashboards"},
			},
			{
				ID:          "settings",
				Label:       "Go to Organization Settings",
				Path:        "/settings",
				Icon:        "gear",
				Description: "Members, tenants and access configuration",
				Keywords:    []string{"organization", "members", "tenants"},
			},
		},
		Actions: []Item{
			{
				ID:          "new-invoice",
				Label:       "Create New Invoice",
				Path:        "/billing/invoices/new",
				Icon:        "invoice",
				Description: "Draft a new invoice for the active tenant",
				Keywords:    []string{"billing", "invoice", "create"},
			},
			{
				ID:          "trigger-deploy",
				Label:       "Trigger Deployment",
				Path:        "/deployments/new",
				Icon:        "rocket",
				Description: "Start a rollout to a selected environment",
				Keywords:    []string{"release", "rollout", "ship"},
			},
			{
				ID:          "view-logs",
				Label:       "View Application Logs",
				Path:        "/logs",
				Icon:        "scroll",
				Description: "Page through the console's own log file",
				Keywords:    []string{"logs", "debug", "pager"},
			},
		},
	}
}

// TenantList converts configured tenants to domain tenants.
func (c *Config) TenantList() []domain.Tenant {
	out := make([]domain.Tenant, 0, len(c.Tenants))
	for _, t := range c.Tenants {
		out = append(out, domain.Tenant{ID: t.ID, Name: t.Name})
	}
	return out
}
