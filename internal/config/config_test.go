package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	svc := NewConfigService()

	original := DefaultConfig()
	original.UISettings.SidebarCollapsed = true

	require.NoError(t, svc.SaveToPath(original, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, original.Version, loaded.Version)
	require.True(t, loaded.UISettings.SidebarCollapsed)
	require.Equal(t, len(original.Navigation), len(loaded.Navigation))
	require.Equal(t, original.Actions[0].Keywords, loaded.Actions[0].Keywords)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadFromPathRejectsBadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	content := `version = 1

[ui]
theme = "drak"

[[navigation]]
id = "billing"
label = "Go to Billing"
path = "/billing"
icon = "billing"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigService().LoadFromPath(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown theme "drak"`)
	require.Contains(t, err.Error(), `did you mean "dark"?`)
}

func TestValidateDuplicateIDs(t *testing.T) {
	cfg := &Config{
		Navigation: []Item{
			{ID: "billing", Label: "A", Path: "/billing"},
			{ID: "billing", Label: "B", Path: "/billing"},
		},
	}

	err := Validate(cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate entry id "billing"`)
}

func TestValidateMissingID(t *testing.T) {
	cfg := &Config{
		Actions: []Item{{Label: "Orphan", Path: "/x"}},
	}

	require.ErrorContains(t, Validate(cfg), "missing an id")
}

func TestValidateMissingPath(t *testing.T) {
	cfg := &Config{
		Actions: []Item{{ID: "x", Label: "X"}},
	}

	require.ErrorContains(t, Validate(cfg), "missing a path")
}

func TestValidateChecksAcrossSections(t *testing.T) {
	cfg := &Config{
		Actions:    []Item{{ID: "same", Label: "A", Path: "/a"}},
		Navigation: []Item{{ID: "same", Label: "B", Path: "/b"}},
	}

	require.ErrorContains(t, Validate(cfg), "duplicate")
}

func TestSuggest(t *testing.T) {
	require.Equal(t, ` (did you mean "dark"?)`, Suggest("drak", KnownThemes))
	require.Equal(t, "", Suggest("completely-different", KnownThemes))
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestTenantList(t *testing.T) {
	cfg := DefaultConfig()

	tenants := cfg.TenantList()

	require.Len(t, tenants, len(cfg.Tenants))
	require.Equal(t, cfg.Tenants[0].ID, tenants[0].ID)
	require.Equal(t, cfg.Tenants[0].Name, tenants[0].Name)
}
