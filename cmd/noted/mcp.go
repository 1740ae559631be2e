// ABOUTME: MCP command running the stdio MCP server.
// ABOUTME: Lets AI agents manage notes through tool calls.

package main

import (
	notemcp "github.com/harper/noted/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Run a Model Context Protocol server on stdio.

Exposes note and category operations as tools so AI agents can create,
search, update and delete notes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return notemcp.NewServer(notes, categories).Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
