package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsZeroPrefs(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), DefaultFileName))

	p, err := store.Load()

	require.NoError(t, err, "a missing prefs file is not an error")
	require.Equal(t, Prefs{}, p)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), DefaultFileName))

	want := Prefs{
		SidebarCollapsed: true,
		Theme:            "light",
		TenantID:         "initech",
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSaveOverwritesPreviousState(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), DefaultFileName))

	require.NoError(t, store.Save(Prefs{Theme: "light", TenantID: "acme"}))
	require.NoError(t, store.Save(Prefs{Theme: "dark"}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "dark", got.Theme)
	require.Empty(t, got.TenantID, "save writes the whole state, not a merge")
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", DefaultFileName)
	store := NewFileStore(path)

	require.NoError(t, store.Save(Prefs{Theme: "dark"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not toml"), 0644))

	_, err := NewFileStore(path).Load()

	require.ErrorContains(t, err, "failed to parse prefs")
}
