// ABOUTME: Tests for terminal formatting helpers.
// ABOUTME: Covers category display fallback and list item rendering.

package ui

import (
	"strings"
	"testing"

	"github.com/harper/noted/internal/models"
)

type fakeRegistry map[string]bool

func (f fakeRegistry) Contains(label string) bool { return f[label] }

func TestResolveCategoryFallback(t *testing.T) {
	note := *models.NewNote("t", "")
	note.Category = "Work"

	reg := fakeRegistry{"Work": true}
	if got := ResolveCategory(note, reg); got != "Work" {
		t.Errorf("expected Work, got %q", got)
	}

	// Orphaned label: display falls back, stored field untouched.
	orphan := fakeRegistry{}
	if got := ResolveCategory(note, orphan); got != models.DefaultCategory {
		t.Errorf("expected default fallback, got %q", got)
	}
	if note.Category != "Work" {
		t.Errorf("stored category mutated: %q", note.Category)
	}
}

func TestFormatNoteListItem(t *testing.T) {
	note := *models.NewNote("Groceries", "Milk")
	note.Pinned = true

	out := FormatNoteListItem(note, models.DefaultCategory)
	if !strings.Contains(out, "Groceries") {
		t.Errorf("expected title in output: %q", out)
	}
	if !strings.Contains(out, note.ID.String()[:6]) {
		t.Errorf("expected id prefix in output: %q", out)
	}
	if !strings.Contains(out, models.DefaultCategory) {
		t.Errorf("expected category in output: %q", out)
	}
}

func TestFormatNoteListItemUntitled(t *testing.T) {
	note := *models.NewNote("", "body only")
	out := FormatNoteListItem(note, models.DefaultCategory)
	if !strings.Contains(out, "(untitled)") {
		t.Errorf("expected untitled placeholder: %q", out)
	}
}
