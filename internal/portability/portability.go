// ABOUTME: Export and import of the note collection for data portability.
// ABOUTME: JSON envelope for machine roundtrips, markdown with frontmatter for humans.

package portability

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/repo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFormat marks an import payload that is not a note-array
// structure. Nothing is merged when it is returned.
var ErrInvalidFormat = errors.New("not a valid note export")

// Envelope is the standalone export file format.
type Envelope struct {
	ExportedAt time.Time     `json:"exported_at"`
	Version    string        `json:"version"`
	Notes      []models.Note `json:"notes"`
}

const Version = "1.0"

// EncodeJSON serializes the collection into the export envelope.
func EncodeJSON(notes []models.Note) ([]byte, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	env := Envelope{
		ExportedAt: time.Now(),
		Version:    Version,
		Notes:      notes,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return data, nil
}

// Decode parses an import payload. Both the envelope and a bare note
// array are accepted; anything else fails all-or-nothing.
func Decode(data []byte) ([]models.Note, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidFormat)
	}

	var notes []models.Note
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &notes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case '{':
		var env Envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		if env.Notes == nil {
			return nil, fmt.Errorf("%w: missing notes array", ErrInvalidFormat)
		}
		notes = env.Notes
	default:
		return nil, fmt.Errorf("%w: expected JSON array or object", ErrInvalidFormat)
	}

	for i, n := range notes {
		if n.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: record %d has no id", ErrInvalidFormat, i)
		}
	}
	return notes, nil
}

// Merge appends incoming notes whose ids are new; colliding ids are
// silently dropped so existing notes are never overwritten. The whole
// merge persists as a single write.
func Merge(r *repo.Repository, incoming []models.Note) (added, skipped int, err error) {
	existing := make(map[uuid.UUID]struct{}, r.Len())
	for _, n := range r.Notes() {
		existing[n.ID] = struct{}{}
	}

	var fresh []models.Note
	for _, n := range incoming {
		if _, collides := existing[n.ID]; collides {
			skipped++
			continue
		}
		existing[n.ID] = struct{}{}
		fresh = append(fresh, n)
	}

	if err := r.Append(fresh); err != nil {
		return 0, 0, err
	}
	return len(fresh), skipped, nil
}

// frontmatter is the YAML header of a markdown export.
type frontmatter struct {
	ID       string       `yaml:"id"`
	Title    string       `yaml:"title"`
	Category string       `yaml:"category"`
	Color    models.Color `yaml:"color"`
	Pinned   bool         `yaml:"pinned"`
	Created  time.Time    `yaml:"created"`
	Image    string       `yaml:"image,omitempty"`
}

// ExportMarkdown writes one markdown file per note into dir.
func ExportMarkdown(notes []models.Note, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	for _, n := range notes {
		fm := frontmatter{
			ID:       n.ID.String(),
			Title:    n.Title,
			Category: n.Category,
			Color:    n.Color,
			Pinned:   n.Pinned,
			Created:  n.CreatedAt,
			Image:    n.Image,
		}

		var sb strings.Builder
		sb.WriteString("---\n")
		header, err := yaml.Marshal(fm)
		if err != nil {
			return fmt.Errorf("encode frontmatter: %w", err)
		}
		sb.Write(header)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Content)

		name := sanitizeFilename(n.Title)
		if name == "" {
			name = n.ID.String()[:8]
		}
		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(strings.TrimSpace(name))
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
