package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"opsdeck/internal/config"
	"opsdeck/internal/domain"
)

func TestNewBuildsActionsBeforeNavigation(t *testing.T) {
	cfg := config.DefaultConfig()

	r := New(cfg, nil)
	entries := r.Entries()

	require.Len(t, entries, len(cfg.Actions)+len(cfg.Navigation))
	for i, e := range entries {
		if i < len(cfg.Actions) {
			require.Equal(t, domain.SectionActions, e.Section, "actions come first")
		} else {
			require.Equal(t, domain.SectionNavigation, e.Section)
		}
	}
	require.Equal(t, "new-invoice", entries[0].ID, "config order is preserved")
	require.Equal(t, "billing", entries[len(cfg.Actions)].ID)
}

func TestIconResolutionAtStartup(t *testing.T) {
	cfg := &config.Config{
		Navigation: []config.Item{
			{ID: "a", Label: "A", Path: "/billing", Icon: "billing"},
			{ID: "b", Label: "B", Path: "/settings", Icon: "no-such-icon"},
			{ID: "c", Label: "C", Path: "/logs"},
		},
	}

	r := New(cfg, nil)
	entries := r.Entries()

	require.Equal(t, "¤", entries[0].Icon, "known keys resolve to their glyph")
	require.Equal(t, defaultGlyph, entries[1].Icon, "unknown keys fall back to the default glyph")
	require.Equal(t, defaultGlyph, entries[2].Icon, "missing keys fall back too")
}

func TestEntriesReturnsACopy(t *testing.T) {
	r := New(config.DefaultConfig(), nil)

	entries := r.Entries()
	entries[0].Label = "mutated"

	require.NotEqual(t, "mutated", r.Entries()[0].Label)
}

func TestNavigationEntries(t *testing.T) {
	cfg := config.DefaultConfig()
	r := New(cfg, nil)

	nav := r.NavigationEntries()

	require.Len(t, nav, len(cfg.Navigation))
	for _, e := range nav {
		require.Equal(t, domain.SectionNavigation, e.Section)
	}
}

func TestIcon(t *testing.T) {
	r := New(config.DefaultConfig(), nil)

	require.Equal(t, "⚙", r.Icon("gear"))
	require.Equal(t, defaultGlyph, r.Icon("bogus"))
}
