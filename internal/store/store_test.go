// ABOUTME: Tests for the key-value persistence gateway.
// ABOUTME: Covers roundtrips, missing keys, overwrite, and delete idempotence.

package store

import (
	"errors"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetRoundtrip(t *testing.T) {
	s := openTest(t)

	if err := s.Set(KeyNotes, []byte(`[]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := s.Get(KeyNotes)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("expected %q, got %q", `[]`, got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTest(t)

	_, err := s.Get("nope")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSetOverwritesWhole(t *testing.T) {
	s := openTest(t)

	if err := s.Set(KeyPrefFont, []byte("ntype")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Set(KeyPrefFont, []byte("ndot")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := s.Get(KeyPrefFont)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "ndot" {
		t.Errorf("expected %q, got %q", "ndot", got)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := openTest(t)

	if err := s.Set(KeyNotes, []byte(`[]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Delete(KeyNotes); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.Delete(KeyNotes); err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}

	_, err := s.Get(KeyNotes)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.Set(KeyCategories, []byte(`["Work"]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(KeyCategories)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if string(got) != `["Work"]` {
		t.Errorf("expected %q, got %q", `["Work"]`, got)
	}
}
