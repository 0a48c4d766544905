// Package server provides the MCP server implementation for the mcp-sports gateway.
package server

// SportsToolServer defines the interface for the MCP server that handles
// sports-statistics tool calls and cache-inspection resources.
type SportsToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}
