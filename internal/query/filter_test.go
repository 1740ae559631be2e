// ABOUTME: Tests for the filter/sort engine.
// ABOUTME: Covers search, category wildcard, sort modes, and idempotence.

package query

import (
	"testing"
	"time"

	"github.com/harper/noted/internal/models"
)

func note(title, content, category string, created time.Time, pinned bool) models.Note {
	n := models.NewNote(title, content)
	n.Category = category
	n.CreatedAt = created
	n.Pinned = pinned
	return *n
}

func titles(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestTitleSortAscending(t *testing.T) {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	notes := []models.Note{
		note("Zebra", "", models.DefaultCategory, day, false),
		note("Apple", "", models.DefaultCategory, day.Add(time.Hour), false),
	}

	got := Apply(notes, Filter{Category: models.AllCategories, Sort: SortTitleAsc})
	want := []string{"Apple", "Zebra"}
	for i := range want {
		if got[i].Title != want[i] {
			t.Errorf("position %d: expected %q, got %v", i, want[i], titles(got))
		}
	}
}

func TestDateSorts(t *testing.T) {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	notes := []models.Note{
		note("old", "", models.DefaultCategory, day, false),
		note("new", "", models.DefaultCategory, day.Add(time.Hour), false),
	}

	newest := Apply(notes, Filter{Sort: SortNewest})
	if newest[0].Title != "new" {
		t.Errorf("newest-first: expected new first, got %v", titles(newest))
	}

	oldest := Apply(notes, Filter{Sort: SortOldest})
	if oldest[0].Title != "old" {
		t.Errorf("oldest-first: expected old first, got %v", titles(oldest))
	}
}

func TestSearchMatchesTitleOrContent(t *testing.T) {
	now := time.Now()
	notes := []models.Note{
		note("Groceries", "milk and eggs", models.DefaultCategory, now, false),
		note("Standup", "talk about EGGS deadline", models.DefaultCategory, now, false),
		note("Travel", "pack bags", models.DefaultCategory, now, false),
	}

	got := Apply(notes, Filter{Search: "eggs"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", titles(got))
	}
}

func TestCategoryFilterAndWildcard(t *testing.T) {
	now := time.Now()
	notes := []models.Note{
		note("a", "", "Work", now, false),
		note("b", "", models.DefaultCategory, now, false),
	}

	work := Apply(notes, Filter{Category: "Work"})
	if len(work) != 1 || work[0].Title != "a" {
		t.Errorf("expected only Work note, got %v", titles(work))
	}

	all := Apply(notes, Filter{Category: models.AllCategories})
	if len(all) != 2 {
		t.Errorf("wildcard should keep everything, got %v", titles(all))
	}
}

func TestPinnedOnly(t *testing.T) {
	now := time.Now()
	notes := []models.Note{
		note("pinned", "", models.DefaultCategory, now, true),
		note("plain", "", models.DefaultCategory, now, false),
	}

	got := Apply(notes, Filter{PinnedOnly: true})
	if len(got) != 1 || got[0].Title != "pinned" {
		t.Errorf("expected only pinned note, got %v", titles(got))
	}
}

func TestPinDoesNotReorder(t *testing.T) {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	notes := []models.Note{
		note("older pinned", "", models.DefaultCategory, day, true),
		note("newer plain", "", models.DefaultCategory, day.Add(time.Hour), false),
	}

	got := Apply(notes, Filter{Sort: SortNewest})
	if got[0].Title != "newer plain" {
		t.Errorf("pinning must not override sort mode, got %v", titles(got))
	}
}

func TestApplyIdempotentAndPure(t *testing.T) {
	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	notes := []models.Note{
		note("c", "", models.DefaultCategory, day, false),
		note("a", "", models.DefaultCategory, day.Add(time.Hour), false),
		note("b", "", models.DefaultCategory, day.Add(2*time.Hour), false),
	}
	inputOrder := titles(notes)

	f := Filter{Sort: SortTitleAsc}
	first := Apply(notes, f)
	second := Apply(notes, f)

	if len(first) != len(second) {
		t.Fatalf("non-deterministic output sizes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs between runs", i)
		}
	}

	for i, title := range titles(notes) {
		if title != inputOrder[i] {
			t.Errorf("input slice mutated at %d: %q != %q", i, title, inputOrder[i])
		}
	}
}

func TestParseSort(t *testing.T) {
	if s, err := ParseSort(""); err != nil || s != SortNewest {
		t.Errorf("empty should default to newest, got %q, %v", s, err)
	}
	if _, err := ParseSort("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
