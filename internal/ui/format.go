// ABOUTME: Terminal formatting for note output.
// ABOUTME: Uses glamour for markdown content and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/noted/internal/models"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// CategoryResolver reports whether a label exists in the registry.
// Used for display fallback; stored note data is never rewritten.
type CategoryResolver interface {
	Contains(label string) bool
}

// ResolveCategory returns the display label for a note's category,
// falling back to the default when the registry no longer knows it.
func ResolveCategory(n models.Note, reg CategoryResolver) string {
	if reg == nil || reg.Contains(n.Category) {
		return n.Category
	}
	return models.DefaultCategory
}

func FormatNoteListItem(n models.Note, category string) string {
	var sb strings.Builder

	idPrefix := n.ID.String()[:6]
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	marker := "  "
	if n.Pinned {
		marker = yellow("* ")
	}
	sb.WriteString(fmt.Sprintf("%s%s  %s\n", marker, faint(idPrefix), bold(title)))

	meta := []string{category}
	if n.Color != models.ColorNeutral && n.Color != "" {
		meta = append(meta, string(n.Color))
	}
	if n.Image != "" {
		meta = append(meta, "image")
	}
	sb.WriteString(fmt.Sprintf("           %s %s\n", faint("In:"), cyan(strings.Join(meta, ", "))))
	sb.WriteString(fmt.Sprintf("           %s %s\n",
		faint("Created:"),
		faint(n.CreatedAt.Format("2006-01-02 15:04"))))

	return sb.String()
}

func FormatNoteHeader(n models.Note, category string) string {
	var sb strings.Builder

	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("%s\n", bold(title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(n.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Category:"), cyan(category)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(n.CreatedAt.Format("2006-01-02 15:04"))))
	if n.Pinned {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Pinned:"), yellow("yes")))
	}
	if n.Image != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Image:"), n.Image))
	}
	sb.WriteString(Separator())
	return sb.String()
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatCategoryList(labels []string, counts map[string]int) string {
	var sb strings.Builder
	for _, label := range labels {
		line := cyan(label)
		if label == models.AllCategories || label == models.DefaultCategory {
			line += faint(" (default)")
		}
		if n, ok := counts[label]; ok && label != models.AllCategories {
			line += faint(fmt.Sprintf(" (%d)", n))
		}
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
