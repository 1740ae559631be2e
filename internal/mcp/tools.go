// ABOUTME: MCP tools for note operations.
// ABOUTME: Maps the CLI surface to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/harper/noted/internal/models"
	"github.com/harper/noted/internal/query"
	"github.com/harper/noted/internal/repo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name:        "add_note",
		Description: "Create a new note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content (markdown)"},
				"category": {"type": "string", "description": "Category label, defaults to Personal"},
				"color": {"type": "string", "description": "Color tag: neutral, red, blue, green, yellow"}
			},
			"required": ["title"]
		}`),
	}, s.handleAddNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes with optional search, category filter, and sort mode",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"search": {"type": "string", "description": "Substring matched against title and content"},
				"category": {"type": "string", "description": "Category label, or All"},
				"sort": {"type": "string", "description": "newest, oldest, title, or title-desc"},
				"pinned": {"type": "boolean", "description": "Only pinned notes"}
			}
		}`),
	}, s.handleListNotes)

	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update fields of an existing note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"},
				"category": {"type": "string", "description": "New category label"},
				"color": {"type": "string", "description": "New color tag"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_pin",
		Description: "Pin or unpin a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleTogglePin)

	s.server.AddTool(&mcp.Tool{
		Name:        "list_categories",
		Description: "List category labels (defaults first)",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListCategories)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// resolve accepts a full uuid or a 6+ character prefix.
func (s *Server) resolve(raw string) (models.Note, error) {
	if id, err := uuid.Parse(raw); err == nil {
		return s.repo.Get(id)
	}
	return s.repo.FindByPrefix(raw)
}

// checkCategory rejects labels absent from the registry. Empty means
// "use the default" and is always fine.
func (s *Server) checkCategory(label string) error {
	if label == "" || s.registry.Contains(label) {
		return nil
	}
	return fmt.Errorf("%w: %q", repo.ErrUnknownCategory, label)
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title    string       `json:"title"`
		Content  string       `json:"content"`
		Category string       `json:"category"`
		Color    models.Color `json:"color"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if err := s.checkCategory(params.Category); err != nil {
		return errResult("%v", err), nil
	}

	note, err := s.repo.Create(params.Title, params.Content, "", params.Color, params.Category)
	if err != nil {
		return errResult("failed to create note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Created note %s", note.ID.String())), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Search   string `json:"search"`
		Category string `json:"category"`
		Sort     string `json:"sort"`
		Pinned   bool   `json:"pinned"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	sortMode, err := query.ParseSort(params.Sort)
	if err != nil {
		return errResult("%v", err), nil
	}

	notes := query.Apply(s.repo.Notes(), query.Filter{
		Search:     params.Search,
		Category:   params.Category,
		Sort:       sortMode,
		PinnedOnly: params.Pinned,
	})

	data, _ := json.MarshalIndent(notes, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID       string        `json:"id"`
		Title    *string       `json:"title"`
		Content  *string       `json:"content"`
		Category *string       `json:"category"`
		Color    *models.Color `json:"color"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if params.Category != nil {
		if err := s.checkCategory(*params.Category); err != nil {
			return errResult("%v", err), nil
		}
	}

	note, err := s.resolve(params.ID)
	if err != nil {
		return errResult("failed to find note: %v", err), nil
	}

	updated, err := s.repo.Update(note.ID, models.Patch{
		Title:    params.Title,
		Content:  params.Content,
		Category: params.Category,
		Color:    params.Color,
	})
	if err != nil {
		return errResult("failed to update note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Updated note %s", updated.ID.String())), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.resolve(params.ID)
	if err != nil {
		return errResult("failed to find note: %v", err), nil
	}
	if err := s.repo.Delete(note.ID); err != nil {
		return errResult("failed to delete note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Deleted note %s", note.ID.String())), nil
}

func (s *Server) handleTogglePin(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.resolve(params.ID)
	if err != nil {
		return errResult("failed to find note: %v", err), nil
	}

	updated, err := s.repo.TogglePinned(note.ID)
	if err != nil {
		return errResult("failed to toggle pin: %v", err), nil
	}
	state := "Unpinned"
	if updated.Pinned {
		state = "Pinned"
	}
	return textResult(fmt.Sprintf("%s note %s", state, updated.ID.String())), nil
}

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, _ := json.MarshalIndent(s.registry.List(), "", "  ")
	return textResult(string(data)), nil
}
