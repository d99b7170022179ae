// Package registry turns the configured navigation items and quick actions
// into the normalized command entries consumed by the palette, and resolves
// symbolic icon keys to concrete glyphs once at startup.
package registry

import (
	"go.uber.org/zap"

	"opsdeck/internal/config"
	"opsdeck/internal/domain"
)

// defaultGlyph is used when a configured icon key has no renderer.
const defaultGlyph = "•"

// glyphs maps symbolic icon keys to their terminal renderings. Resolved
// once at startup; config references icons by key only.
var glyphs = map[string]string{
	"billing": "¤",
	"deploy":  "⇪",
	"chart":   "▲",
	"gear":    "⚙",
	"invoice": "▤",
	"rocket":  "➤",
	"scroll":  "≡",
	"home":    "⌂",
	"search":  "?",
}

// Registry holds the resolved command set for one configuration.
type Registry struct {
	entries []domain.CommandEntry
	log     *zap.Logger
}

// New builds the registry from config: quick actions first, then navigation
// items, both preserving config order. Unknown icon keys fall back to the
// default glyph with a logged hint.
func New(cfg *config.Config, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{log: logger}
	r.entries = make([]domain.CommandEntry, 0, len(cfg.Actions)+len(cfg.Navigation))
	for _, item := range cfg.Actions {
		r.entries = append(r.entries, r.normalize(item, domain.SectionActions))
	}
	for _, item := range cfg.Navigation {
		r.entries = append(r.entries, r.normalize(item, domain.SectionNavigation))
	}
	return r
}

// Entries returns a fresh copy of the command set so callers can't mutate
// the registry's view of the configuration.
func (r *Registry) Entries() []domain.CommandEntry {
	out := make([]domain.CommandEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// NavigationEntries returns only the navigation section, in order.
func (r *Registry) NavigationEntries() []domain.CommandEntry {
	var out []domain.CommandEntry
	for _, e := range r.entries {
		if e.Section == domain.SectionNavigation {
			out = append(out, e)
		}
	}
	return out
}

// Icon resolves a symbolic icon key to its glyph.
func (r *Registry) Icon(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return defaultGlyph
}

func (r *Registry) normalize(item config.Item, section domain.Section) domain.CommandEntry {
	if _, ok := glyphs[item.Icon]; !ok && item.Icon != "" {
		keys := make([]string, 0, len(glyphs))
		for k := range glyphs {
			keys = append(keys, k)
		}
		r.log.Warn("unknown icon key, using default glyph",
			zap.String("entry", item.ID),
			zap.String("icon", item.Icon+config.Suggest(item.Icon, keys)))
	}

	return domain.CommandEntry{
		Section:     section,
		ID:          item.ID,
		Label:       item.Label,
		Path:        item.Path,
		Icon:        r.Icon(item.Icon),
		Description: item.Description,
		Badge:       item.Badge,
		Keywords:    item.Keywords,
	}
}
