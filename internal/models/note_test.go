// ABOUTME: Tests for the note model.
// ABOUTME: Covers constructor defaults, patching, and color token resolution.

package models

import (
	"testing"
)

func TestNewNoteDefaults(t *testing.T) {
	note := NewNote("Groceries", "Milk, eggs")

	if note.Title != "Groceries" {
		t.Errorf("expected title %q, got %q", "Groceries", note.Title)
	}
	if note.Pinned {
		t.Error("new note should not be pinned")
	}
	if note.Category != DefaultCategory {
		t.Errorf("expected category %q, got %q", DefaultCategory, note.Category)
	}
	if note.Color != ColorNeutral {
		t.Errorf("expected color %q, got %q", ColorNeutral, note.Color)
	}
	if note.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestNewNoteUniqueIDs(t *testing.T) {
	a := NewNote("a", "")
	b := NewNote("b", "")
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, both %v", a.ID)
	}
}

func TestPatchApply(t *testing.T) {
	note := NewNote("old", "body")
	created := note.CreatedAt

	title := "new"
	pinned := true
	Patch{Title: &title, Pinned: &pinned}.Apply(note)

	if note.Title != "new" {
		t.Errorf("expected patched title, got %q", note.Title)
	}
	if !note.Pinned {
		t.Error("expected pinned flag set")
	}
	if note.Content != "body" {
		t.Errorf("unpatched content changed: %q", note.Content)
	}
	if !note.CreatedAt.Equal(created) {
		t.Errorf("created_at mutated: %v != %v", note.CreatedAt, created)
	}
}

func TestPatchApplyEmpty(t *testing.T) {
	note := NewNote("title", "content")
	before := *note
	Patch{}.Apply(note)
	if *note != before {
		t.Errorf("empty patch changed note: %+v != %+v", *note, before)
	}
}

func TestColorPairFallback(t *testing.T) {
	if Color("magenta").Valid() {
		t.Error("magenta should not be a valid token")
	}
	if got := Color("magenta").Pair(); got != ColorNeutral.Pair() {
		t.Errorf("expected neutral fallback, got %+v", got)
	}
	if got := ColorRed.Pair().Light; got != "#ffcccc" {
		t.Errorf("expected red light pair #ffcccc, got %s", got)
	}
}
