// Package mcp provides an MCP (Model Context Protocol) server adapter for Sightline.
// It lets AI assistants drive a voice session, inspect modes and ask for
// navigation guidance over stdio.
package mcp

import "errors"

// ErrMissingSessionFactory is returned when the session factory is not provided.
var ErrMissingSessionFactory = errors.New("mcp: session factory is required")
