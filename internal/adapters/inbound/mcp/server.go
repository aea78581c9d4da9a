package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewEasyDeliveryMCPServer creates a new MCP server with all easydelivery
// tools registered. configPath names the config file; empty means
// .easydelivery.yaml in the working directory.
func NewEasyDeliveryMCPServer(configPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"easydelivery",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, configPath)

	return s
}
