package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for Sightline.
// Tool calls share one dispatch session; mu serialises access to it.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu         sync.Mutex
	dispatcher driving.Dispatcher
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "sightline",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// session returns the current dispatch session, creating one if needed.
// Caller must hold s.mu.
func (s *Server) session() (driving.Dispatcher, error) {
	if s.dispatcher != nil {
		return s.dispatcher, nil
	}
	d, err := s.ports.Sessions.NewDispatchSession()
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	s.dispatcher = d
	return d, nil
}
