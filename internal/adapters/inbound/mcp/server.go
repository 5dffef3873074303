package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCCWKitMCPServer creates a new MCP server with all CCWKit tools
// registered. catalogPath selects the catalog file; empty means the
// embedded CCW instrument.
func NewCCWKitMCPServer(catalogPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"ccwkit",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, catalogPath)

	return s
}
