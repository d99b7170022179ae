// Package prefs persists the small set of UI preferences that survive
// restarts: sidebar collapse state, theme, and the last active tenant.
// Persistence goes through an explicit Store so the shell never touches
// ambient global storage.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the prefs file created in the workspace directory.
const DefaultFileName = ".opsdeck-prefs.toml"

// Prefs holds persisted UI state. Loaded once at startup, written on change.
type Prefs struct {
	SidebarCollapsed bool   `toml:"sidebar_collapsed"`
	Theme            string `toml:"theme"`
	TenantID         string `toml:"tenant_id"`
}

// Store is the storage boundary injected into the shell.
type Store interface {
	Load() (Prefs, error)
	Save(Prefs) error
}

// fileStore persists prefs as TOML, holding a file lock during writes so
// two console instances sharing a workspace don't clobber each other.
type fileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) Store {
	return &fileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads prefs from disk. A missing file yields zero-value prefs and
// no error; the caller applies its own defaults on top.
func (s *fileStore) Load() (Prefs, error) {
	var p Prefs

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("failed to read prefs file: %w", err)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse prefs: %w", err)
	}
	return p, nil
}

// Save writes prefs to disk under the file lock.
func (s *fileStore) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock prefs file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs file: %w", err)
	}
	return nil
}
