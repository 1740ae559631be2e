// ABOUTME: Pure filter/sort engine deriving the displayable note sequence.
// ABOUTME: Never mutates its input; same inputs always yield the same output.

package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harper/noted/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort selects the ordering of the derived list. The sort mode is the
// sole ordering key; pinning never reorders.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortTitleAsc  Sort = "title"
	SortTitleDesc Sort = "title-desc"
)

// ParseSort maps a user-supplied mode name to a Sort.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "", SortNewest:
		return SortNewest, nil
	case SortOldest, SortTitleAsc, SortTitleDesc:
		return Sort(s), nil
	}
	return "", fmt.Errorf("unknown sort mode %q (newest|oldest|title|title-desc)", s)
}

// Filter holds the inputs of a derivation. The zero value selects
// everything, newest first.
type Filter struct {
	// Search is a case-insensitive substring matched against title and
	// content. Empty matches everything.
	Search string

	// Category keeps only notes with this exact label. Empty or "All"
	// is the wildcard.
	Category string

	Sort Sort

	// PinnedOnly keeps only pinned notes. A filter affordance, not an
	// ordering rule.
	PinnedOnly bool

	// Lang selects the collation locale for title sorts. The zero tag
	// uses the root collation.
	Lang language.Tag
}

// Apply derives the display sequence from the collection.
func Apply(notes []models.Note, f Filter) []models.Note {
	needle := strings.ToLower(f.Search)

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if f.Category != "" && f.Category != models.AllCategories && n.Category != f.Category {
			continue
		}
		if f.PinnedOnly && !n.Pinned {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Content), needle) {
			continue
		}
		out = append(out, n)
	}

	switch f.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortTitleAsc, SortTitleDesc:
		c := collate.New(f.Lang, collate.Loose)
		asc := f.Sort == SortTitleAsc
		sort.SliceStable(out, func(i, j int) bool {
			cmp := c.CompareString(out[i].Title, out[j].Title)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}
