// ABOUTME: Sentinel errors for repository and registry operations.
// ABOUTME: Validation failures are rejected before any persistence attempt.

package repo

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrPrefixTooShort  = errors.New("prefix must be at least 6 characters")
	ErrAmbiguousPrefix = errors.New("prefix matches multiple notes")

	ErrEmptyLabel       = errors.New("category name cannot be empty")
	ErrDuplicateLabel   = errors.New("category already exists")
	ErrDefaultLabel     = errors.New("cannot delete default categories")
	ErrLabelNotFound    = errors.New("category not found")
	ErrReservedCategory = errors.New("category is reserved")
	ErrUnknownCategory  = errors.New("category is not registered")
)
