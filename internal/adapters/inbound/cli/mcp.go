package cli

import (
	mcpadapter "github.com/abdidvp/easydelivery/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the easydelivery MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(configPath))
	return cmd
}

func newMCPServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start easydelivery MCP server (stdio)",
		Long:  "Start the easydelivery MCP server using stdio transport. This lets AI assistants build payloads, fetch labels and list attachments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewEasyDeliveryMCPServer(*configPath)
			return server.ServeStdio(s)
		},
	}
}
