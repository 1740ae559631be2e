// ABOUTME: Note repository owning the canonical persisted note list.
// ABOUTME: Every mutation flushes the whole collection as one JSON write.

package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/store"
)

// Backend is the key-value gateway the repository persists through.
// *store.Store satisfies it.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte) error
	Delete(key string) error
}

// Repository holds the in-memory note collection in canonical stored
// order (newest-first on creation, subject to Reverse).
type Repository struct {
	backend Backend
	notes   []models.Note
}

func NewRepository(b Backend) *Repository {
	return &Repository{backend: b}
}

// Load hydrates the collection from the store. An absent key yields an
// empty collection; malformed data is surfaced and leaves memory untouched.
func (r *Repository) Load() error {
	data, err := r.backend.Get(store.KeyNotes)
	if errors.Is(err, store.ErrKeyNotFound) {
		r.notes = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return fmt.Errorf("decode notes: %w", err)
	}
	r.notes = notes
	return nil
}

// Notes returns a copy of the collection in canonical order.
func (r *Repository) Notes() []models.Note {
	out := make([]models.Note, len(r.notes))
	copy(out, r.notes)
	return out
}

func (r *Repository) Len() int {
	return len(r.notes)
}

// Get returns the note with the given id.
func (r *Repository) Get(id uuid.UUID) (models.Note, error) {
	for _, n := range r.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, ErrNoteNotFound
}

// FindByPrefix resolves a note by id prefix (minimum 6 chars).
func (r *Repository) FindByPrefix(prefix string) (models.Note, error) {
	if len(prefix) < 6 {
		return models.Note{}, ErrPrefixTooShort
	}

	var matches []models.Note
	for _, n := range r.notes {
		if strings.HasPrefix(n.ID.String(), prefix) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return models.Note{}, ErrNoteNotFound
	}
	if len(matches) > 1 {
		return models.Note{}, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(matches))
	}
	return matches[0], nil
}

// Create allocates a new note and prepends it to the collection.
// Empty image, color, and category fall back to their defaults.
func (r *Repository) Create(title, content, image string, color models.Color, category string) (models.Note, error) {
	if category == models.AllCategories {
		return models.Note{}, fmt.Errorf("%w: %q is the wildcard filter, not a category", ErrReservedCategory, category)
	}

	note := models.NewNote(title, content)
	note.Image = image
	if color != "" {
		note.Color = color
	}
	if category != "" {
		note.Category = category
	}

	r.notes = append([]models.Note{*note}, r.notes...)
	if err := r.flush(); err != nil {
		return models.Note{}, err
	}
	return *note, nil
}

// Update merges the patch into the note with the given id.
func (r *Repository) Update(id uuid.UUID, patch models.Patch) (models.Note, error) {
	if patch.Category != nil && *patch.Category == models.AllCategories {
		return models.Note{}, fmt.Errorf("%w: %q is the wildcard filter, not a category", ErrReservedCategory, *patch.Category)
	}

	for i := range r.notes {
		if r.notes[i].ID == id {
			patch.Apply(&r.notes[i])
			if err := r.flush(); err != nil {
				return models.Note{}, err
			}
			return r.notes[i], nil
		}
	}
	return models.Note{}, ErrNoteNotFound
}

// Delete removes the note if present. Deleting an absent id is a no-op.
func (r *Repository) Delete(id uuid.UUID) error {
	kept := r.notes[:0:0]
	for _, n := range r.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(r.notes) {
		return nil
	}
	r.notes = kept
	return r.flush()
}

// DeleteMany removes every note whose id is in the set, flushing once
// for the whole batch.
func (r *Repository) DeleteMany(ids []uuid.UUID) error {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	kept := r.notes[:0:0]
	for _, n := range r.notes {
		if _, drop := set[n.ID]; !drop {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(r.notes) {
		return nil
	}
	r.notes = kept
	return r.flush()
}

// TogglePinned flips the pinned flag.
func (r *Repository) TogglePinned(id uuid.UUID) (models.Note, error) {
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes[i].Pinned = !r.notes[i].Pinned
			if err := r.flush(); err != nil {
				return models.Note{}, err
			}
			return r.notes[i], nil
		}
	}
	return models.Note{}, ErrNoteNotFound
}

// Reverse flips the canonical stored order of the whole collection.
// This is the single-button "sort" toggle, not a keyed sort.
func (r *Repository) Reverse() error {
	for i, j := 0, len(r.notes)-1; i < j; i, j = i+1, j-1 {
		r.notes[i], r.notes[j] = r.notes[j], r.notes[i]
	}
	return r.flush()
}

// ReassignCategory retags every note in from to to, flushing once.
// Used by the registry when a category is deleted.
func (r *Repository) ReassignCategory(from, to string) error {
	changed := false
	for i := range r.notes {
		if r.notes[i].Category == from {
			r.notes[i].Category = to
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.flush()
}

// Clear removes the persisted notes entry entirely and empties memory.
func (r *Repository) Clear() error {
	if err := r.backend.Delete(store.KeyNotes); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	r.notes = nil
	return nil
}

// Append adds already-formed notes to the end of the collection with a
// single flush. Used by import merges; ids must not collide.
func (r *Repository) Append(notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}
	r.notes = append(r.notes, notes...)
	return r.flush()
}

func (r *Repository) flush() error {
	notes := r.notes
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.backend.Set(store.KeyNotes, data); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}
