// ABOUTME: Tests for preference persistence.
// ABOUTME: Covers defaults on empty store and save/load roundtrips.

package prefs

import (
	"testing"

	"github.com/harper/noted/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadDefaultsOnEmptyStore(t *testing.T) {
	s := openStore(t)

	p, err := Load(s)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if p != Defaults() {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := openStore(t)

	p := Prefs{
		Font:     "ndot",
		DarkMode: false,
		Language: "jp",
		Layout:   "grid",
		Theme:    "dark",
	}
	if err := p.Save(s); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(s)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestLoadPartialKeysKeepOtherDefaults(t *testing.T) {
	s := openStore(t)

	if err := s.Set(store.KeyPrefLang, []byte("jp")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := Load(s)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Language != "jp" {
		t.Errorf("expected language jp, got %q", got.Language)
	}
	if got.Font != Defaults().Font {
		t.Errorf("expected default font, got %q", got.Font)
	}
}
