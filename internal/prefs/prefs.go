// ABOUTME: Cosmetic preferences persisted as scalar strings in the KV store.
// ABOUTME: Explicit struct with load/save, no ambient globals.

package prefs

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/harper/noted/internal/store"
)

// Backend is the key-value gateway preferences persist through.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte) error
}

// Prefs holds the cosmetic settings. A single owner loads it at launch
// and passes it down; mutations go through Save.
type Prefs struct {
	Font     string
	DarkMode bool
	Language string
	Layout   string
	Theme    string
}

// Defaults mirror a fresh install.
func Defaults() Prefs {
	return Prefs{
		Font:     "ntype",
		DarkMode: true,
		Language: "en",
		Layout:   "list",
		Theme:    "system",
	}
}

// Load reads preferences from the store, filling defaults for any key
// never written.
func Load(b Backend) (Prefs, error) {
	p := Defaults()

	read := func(key string, dst *string) error {
		data, err := b.Get(key)
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		*dst = string(data)
		return nil
	}

	if err := read(store.KeyPrefFont, &p.Font); err != nil {
		return p, err
	}
	if err := read(store.KeyPrefLang, &p.Language); err != nil {
		return p, err
	}
	if err := read(store.KeyPrefLayout, &p.Layout); err != nil {
		return p, err
	}
	if err := read(store.KeyPrefTheme, &p.Theme); err != nil {
		return p, err
	}

	var dark string
	if err := read(store.KeyPrefDark, &dark); err != nil {
		return p, err
	}
	if dark != "" {
		v, err := strconv.ParseBool(dark)
		if err != nil {
			return p, fmt.Errorf("decode %s: %w", store.KeyPrefDark, err)
		}
		p.DarkMode = v
	}

	return p, nil
}

// Save writes every preference key.
func (p Prefs) Save(b Backend) error {
	pairs := map[string]string{
		store.KeyPrefFont:   p.Font,
		store.KeyPrefDark:   strconv.FormatBool(p.DarkMode),
		store.KeyPrefLang:   p.Language,
		store.KeyPrefLayout: p.Layout,
		store.KeyPrefTheme:  p.Theme,
	}
	for key, val := range pairs {
		if err := b.Set(key, []byte(val)); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}
