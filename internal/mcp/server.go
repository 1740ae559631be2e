// ABOUTME: MCP server exposing note management to AI agents.
// ABOUTME: Stdio transport over the note repository and category registry.

package mcp

import (
	"context"

	"github.com/harper/noted/internal/repo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server   *mcp.Server
	repo     *repo.Repository
	registry *repo.Registry
}

func NewServer(r *repo.Repository, g *repo.Registry) *Server {
	s := &Server{repo: r, registry: g}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "noted",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
		},
	)

	s.registerTools()
	s.registerResources()
	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
