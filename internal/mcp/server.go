// ABOUTME: MCP server setup for the workout store.
// ABOUTME: Wraps the MCP server with a storage.DB connection.
package mcp

import (
	"context"

	"github.com/mlgx/liftlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     *storage.DB
}

// NewServer creates a new MCP server backed by the given store.
func NewServer(store *storage.DB) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
