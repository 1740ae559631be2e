// ABOUTME: Tests for the MCP server's note access helpers.
// ABOUTME: Covers category validation and resource URI rendering.

package mcp

import (
	"errors"
	"strings"
	"testing"

	"github.com/harper/noted/internal/repo"
	"github.com/harper/noted/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	r := repo.NewRepository(st)
	if err := r.Load(); err != nil {
		t.Fatalf("failed to load notes: %v", err)
	}
	g := repo.NewRegistry(st, r)
	if err := g.Load(); err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}
	return NewServer(r, g)
}

func TestCheckCategory(t *testing.T) {
	s := newTestServer(t)

	if err := s.checkCategory(""); err != nil {
		t.Fatalf("empty category should pass: %v", err)
	}
	if err := s.checkCategory("Personal"); err != nil {
		t.Fatalf("default category should pass: %v", err)
	}
	if err := s.checkCategory("NeverRegistered"); !errors.Is(err, repo.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}

	if err := s.registry.Add("Work"); err != nil {
		t.Fatalf("failed to add category: %v", err)
	}
	if err := s.checkCategory("Work"); err != nil {
		t.Fatalf("registered category should pass: %v", err)
	}
}

func TestParseNoteURI(t *testing.T) {
	id, err := parseNoteURI("noted://note/abc123")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != "abc123" {
		t.Fatalf("expected abc123, got %q", id)
	}

	if _, err := parseNoteURI("noted://note/"); err == nil {
		t.Fatal("expected error for empty id")
	}
	if _, err := parseNoteURI("memo://note/abc123"); err == nil {
		t.Fatal("expected error for wrong scheme")
	}
}

func TestNoteMarkdown(t *testing.T) {
	s := newTestServer(t)

	note, err := s.repo.Create("Groceries", "Milk, eggs", "", "", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := s.repo.TogglePinned(note.ID); err != nil {
		t.Fatalf("pin failed: %v", err)
	}
	got, err := s.repo.Get(note.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	md := noteMarkdown(got)
	if !strings.HasPrefix(md, "# Groceries\n") {
		t.Fatalf("missing title heading: %q", md)
	}
	if !strings.Contains(md, "**Category:** Personal") {
		t.Fatalf("missing category line: %q", md)
	}
	if !strings.Contains(md, "**Pinned:** yes") {
		t.Fatalf("missing pinned line: %q", md)
	}
	if !strings.Contains(md, "Milk, eggs") {
		t.Fatalf("missing content: %q", md)
	}
}
