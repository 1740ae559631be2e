// ABOUTME: Category label constants shared across the repository and registry.
// ABOUTME: "All" is the wildcard filter value, "Personal" the assignable default.

package models

const (
	// AllCategories is the wildcard filter value. It is never assignable
	// to a note.
	AllCategories = "All"

	// DefaultCategory is the permanent fallback label notes are created
	// under and reassigned to when their category is deleted.
	DefaultCategory = "Personal"
)
