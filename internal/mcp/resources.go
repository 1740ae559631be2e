// ABOUTME: MCP resources exposing notes as readable markdown.
// ABOUTME: Individual notes are addressable as noted://note/{id}.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/noted/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "noted://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: "noted://note/{id}",
			Name:        "Note",
			Description: "Access individual notes by ID or 6+ character prefix",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

// parseNoteURI extracts the id segment of a noted://note/{id} URI.
func parseNoteURI(uri string) (string, error) {
	raw, ok := strings.CutPrefix(uri, noteURIPrefix)
	if !ok || raw == "" {
		return "", fmt.Errorf("invalid resource URI: %s", uri)
	}
	return raw, nil
}

// noteMarkdown renders a note for resource consumers.
func noteMarkdown(n models.Note) string {
	var sb strings.Builder

	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**Category:** %s\n", n.Category))
	if n.Pinned {
		sb.WriteString("**Pinned:** yes\n")
	}
	sb.WriteString("\n")
	sb.WriteString(n.Content)
	return sb.String()
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	raw, err := parseNoteURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	note, err := s.resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     noteMarkdown(note),
			},
		},
	}, nil
}
