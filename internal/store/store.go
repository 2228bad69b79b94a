// Package store persists sale state and withdrawal payouts between CLI runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mohsinsiddi/catsale/internal/sale"
)

// ErrNoSale is returned when no sale has been deployed yet.
var ErrNoSale = errors.New("no sale deployed")

// Store is an interface for persisting sale state.
type Store interface {
	Load() (*sale.State, error)
	Save(*sale.State) error
}

// --- in-memory store ---

// MemStore keeps the last saved state in memory (useful for tests).
type MemStore struct {
	data []byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns a copy of the saved state, or ErrNoSale.
func (s *MemStore) Load() (*sale.State, error) {
	if s.data == nil {
		return nil, ErrNoSale
	}
	var st sale.State
	if err := json.Unmarshal(s.data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Save keeps a serialised copy of st.
func (s *MemStore) Save(st *sale.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// --- JSON file store ---

// JSONStore persists sale state to a JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-backed store.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file.
func (s *JSONStore) Path() string { return s.path }

// Load reads the state file, or returns ErrNoSale if there is none.
func (s *JSONStore) Load() (*sale.State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSale
	}
	if err != nil {
		return nil, err
	}
	var st sale.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return &st, nil
}

// Save writes the state through a temp file so a crash never leaves a
// half-written state behind.
func (s *JSONStore) Save(st *sale.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck
	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
