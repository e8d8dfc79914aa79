// ABOUTME: MCP server setup for the workout session engine.
// ABOUTME: Exposes templates, the live session, and history over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/orionmayta1234/Workout-app/internal/rest"
	"github.com/orionmayta1234/Workout-app/internal/session"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

// Server wraps the MCP server with storage and session access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	ctrl      *session.Controller
	timer     *rest.Timer

	// runCtx drives background rest timer countdowns for the lifetime
	// of the serve loop.
	runCtx context.Context
}

// NewServer creates a new MCP server around the given storage and
// session controller.
func NewServer(repo storage.Repository, ctrl *session.Controller, timer *rest.Timer) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "workout",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		ctrl:      ctrl,
		timer:     timer,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.runCtx = ctx
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// startTimerRun spawns a countdown driver for the current timer start.
// Drivers from earlier starts notice the generation change and exit.
func (s *Server) startTimerRun() {
	ctx := s.runCtx
	if ctx == nil {
		ctx = context.Background()
	}
	go s.timer.Run(ctx)
}
