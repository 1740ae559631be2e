// ABOUTME: Badger-backed key-value persistence gateway.
// ABOUTME: Stores JSON blobs under string keys (notes, customCategories, pref:*).

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
)

// Well-known keys in the persisted layout.
const (
	KeyNotes      = "notes"
	KeyCategories = "customCategories"
	KeyPrefFont   = "pref:font"
	KeyPrefDark   = "pref:darkMode"
	KeyPrefLang   = "pref:language"
	KeyPrefLayout = "pref:layout"
	KeyPrefTheme  = "pref:theme"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// Store wraps a local badger database. Values are opaque blobs; callers
// own serialization. A Store has a single writer for its lifetime.
type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

// Set writes the value under key, replacing any previous value whole.
func (s *Store) Set(key string, val []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key entirely. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// DefaultPath returns the XDG data home location for the store.
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "noted", "db")
}
