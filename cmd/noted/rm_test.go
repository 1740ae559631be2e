// ABOUTME: Tests for the rm command's selection building.
// ABOUTME: Repeated id prefixes must still delete the note once.

package main

import (
	"errors"
	"testing"

	"github.com/harper/noted/internal/repo"
	"github.com/harper/noted/internal/store"
)

func openTestRepo(t *testing.T) *repo.Repository {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	r := repo.NewRepository(st)
	if err := r.Load(); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	return r
}

func TestBuildSelectionDeduplicatesPrefixes(t *testing.T) {
	r := openTestRepo(t)

	note, err := r.Create("Groceries", "Milk, eggs", "", "", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	prefix := note.ID.String()[:6]

	tracker, titles, err := buildSelection(r, []string{prefix, prefix})
	if err != nil {
		t.Fatalf("buildSelection failed: %v", err)
	}
	if tracker.Count() != 1 {
		t.Fatalf("expected 1 selected note, got %d", tracker.Count())
	}
	if len(titles) != 1 {
		t.Fatalf("expected 1 title, got %d", len(titles))
	}

	if err := tracker.Confirm(r); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("expected note deleted, %d remain", r.Len())
	}
}

func TestBuildSelectionUnknownPrefix(t *testing.T) {
	r := openTestRepo(t)

	_, _, err := buildSelection(r, []string{"abcdef"})
	if !errors.Is(err, repo.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
