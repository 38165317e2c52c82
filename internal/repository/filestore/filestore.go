// Package filestore is the fallback persistence backend: one JSON array
// document per entity type, guarded by a single RWMutex and written
// atomically via a temp file rename. It implements the same store
// interfaces as the Postgres DAO so the rest of the system cannot tell
// the two apart.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	eventsFile        = "events.json"
	submissionsFile   = "submissions.json"
	reviewsFile       = "reviews.json"
	registrationsFile = "registrations.json"
	usersFile         = "users.json"
)

type Store struct {
	dir string
	mu  sync.RWMutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &Store{
		dir: dir,
	}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readDoc loads a whole entity document. A missing file is an empty
// collection, not an error.
func readDoc[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("os.ReadFile -> %w", err)
	}

	var records []T
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal %v -> %w", filepath.Base(path), err)
	}

	return records, nil
}

// writeDoc replaces a whole entity document. The temp-file rename keeps a
// crash mid-write from truncating the document.
func writeDoc[T any](path string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent -> %w", err)
	}

	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile -> %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("os.Rename -> %w", err)
	}

	return nil
}
