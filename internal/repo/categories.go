// ABOUTME: Category registry managing default and user-added labels.
// ABOUTME: Only custom labels persist; defaults are reconstructed at load.

package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/store"
)

// Registry holds the category label set. "All" and "Personal" are
// permanent; custom labels keep insertion order.
type Registry struct {
	backend Backend
	repo    *Repository
	custom  []string
}

func NewRegistry(b Backend, r *Repository) *Registry {
	return &Registry{backend: b, repo: r}
}

// Load hydrates the custom label list. An absent key yields defaults only.
func (g *Registry) Load() error {
	data, err := g.backend.Get(store.KeyCategories)
	if errors.Is(err, store.ErrKeyNotFound) {
		g.custom = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	var custom []string
	if err := json.Unmarshal(data, &custom); err != nil {
		return fmt.Errorf("decode categories: %w", err)
	}
	g.custom = custom
	return nil
}

// List returns defaults in fixed order followed by custom labels in
// insertion order.
func (g *Registry) List() []string {
	out := []string{models.AllCategories, models.DefaultCategory}
	out = append(out, g.custom...)
	return out
}

// Contains reports whether label is a default or custom category.
func (g *Registry) Contains(label string) bool {
	for _, c := range g.List() {
		if c == label {
			return true
		}
	}
	return false
}

// Add appends a new custom label. Empty (after trimming) and duplicate
// labels are rejected before any write.
func (g *Registry) Add(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if g.Contains(label) {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}

	g.custom = append(g.custom, label)
	if err := g.flush(); err != nil {
		g.custom = g.custom[:len(g.custom)-1]
		return err
	}
	return nil
}

// Remove deletes a custom label and reassigns its notes to the default
// category. Defaults are permanent.
func (g *Registry) Remove(label string) error {
	if label == models.AllCategories || label == models.DefaultCategory {
		return fmt.Errorf("%w: %q", ErrDefaultLabel, label)
	}

	idx := -1
	for i, c := range g.custom {
		if c == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}

	g.custom = append(g.custom[:idx], g.custom[idx+1:]...)
	if err := g.flush(); err != nil {
		return err
	}

	// Mandatory fix-up: no note may keep a dangling category reference.
	return g.repo.ReassignCategory(label, models.DefaultCategory)
}

func (g *Registry) flush() error {
	custom := g.custom
	if custom == nil {
		custom = []string{}
	}
	data, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	if err := g.backend.Set(store.KeyCategories, data); err != nil {
		return fmt.Errorf("save categories: %w", err)
	}
	return nil
}
