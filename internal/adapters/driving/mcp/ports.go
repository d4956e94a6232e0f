package mcp

import (
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions creates the dispatch session the tools drive.
	Sessions driving.SessionFactory

	// Settings exposes configuration as resources. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Sessions == nil {
		return ErrMissingSessionFactory
	}
	return nil
}
