package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps punches, settings and leave entries in the flat JSON files
// of a data directory. One mutex guards all three files; every write goes to
// a temp file first and is renamed into place.
type JSONStore struct {
	dir string
	mu  sync.Mutex
}

// NewJSONStore creates the data directory if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Dir returns the data directory.
func (s *JSONStore) Dir() string {
	return s.dir
}

// Stores returns the repositories backed by this directory.
func (s *JSONStore) Stores() Stores {
	return Stores{
		Punches:  &JSONPunchRepo{store: s},
		Settings: &JSONSettingsRepo{store: s},
		Leave:    &JSONLeaveRepo{store: s},
	}
}

// read decodes name into v. It reports false when the file does not exist.
func (s *JSONStore) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", name, err)
	}
	return true, nil
}

func (s *JSONStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
