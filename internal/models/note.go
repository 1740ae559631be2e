// ABOUTME: Note model representing a short text note with optional image and color tag.
// ABOUTME: Provides constructor with defaults and a field-level patch type.

package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Color     Color     `json:"color"`
	Category  string    `json:"category"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNote(title, content string) *Note {
	return &Note{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Color:     ColorNeutral,
		Category:  DefaultCategory,
		Pinned:    false,
		CreatedAt: time.Now(),
	}
}

// Patch holds optional replacements for a note's mutable fields.
// Nil means "leave unchanged"; ID and CreatedAt are never patchable.
type Patch struct {
	Title    *string
	Content  *string
	Image    *string
	Color    *Color
	Category *string
	Pinned   *bool
}

// Apply merges the patch into the note.
func (p Patch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
}
