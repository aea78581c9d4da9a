package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/picking"
	"github.com/abdidvp/easydelivery/internal/application"
	"github.com/abdidvp/easydelivery/internal/bootstrap"
	"github.com/abdidvp/easydelivery/internal/domain"
)

// registerTools registers all easydelivery MCP tools on the given server.
func registerTools(s *server.MCPServer, configPath string) {
	// 1. easydelivery_build_payload
	s.AddTool(
		mcplib.NewTool("easydelivery_build_payload",
			mcplib.WithDescription("Returns the JSON order payload that would be sent to the Easy Delivery API for a picking"),
			mcplib.WithString("picking_file",
				mcplib.Required(),
				mcplib.Description("Path to the picking file (YAML or JSON)"),
			),
		),
		handleBuildPayload(configPath),
	)

	// 2. easydelivery_generate_label
	s.AddTool(
		mcplib.NewTool("easydelivery_generate_label",
			mcplib.WithDescription("Requests the shipping label of a picking and attaches the returned PDF or ZPL files to it"),
			mcplib.WithString("picking_file",
				mcplib.Required(),
				mcplib.Description("Path to the picking file (YAML or JSON)"),
			),
			mcplib.WithBoolean("force", mcplib.Description("Request a label even if the carrier is not Easy Delivery")),
		),
		handleGenerateLabel(configPath),
	)

	// 3. easydelivery_list_attachments
	s.AddTool(
		mcplib.NewTool("easydelivery_list_attachments",
			mcplib.WithDescription("Lists the label attachments stored for a picking"),
			mcplib.WithNumber("picking_id",
				mcplib.Required(),
				mcplib.Description("ID of the picking"),
			),
		),
		handleListAttachments(configPath),
	)
}

func handleBuildPayload(configPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("picking_file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := bootstrap.LoadConfig(bootstrap.Options{ConfigPath: configPath})
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, err := picking.New().Load(path)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(domain.BuildShipmentRequest(p, cfg.Company))
	}
}

func handleGenerateLabel(configPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("picking_file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		force, _ := request.GetArguments()["force"].(bool)

		rt, err := newRuntime(ctx, configPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		defer rt.Close()

		p, err := rt.Loader.Load(path)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !force {
			if err := application.EnsureLabelCarrier(p); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		res, err := rt.GenerateLabel(ctx, p)
		if err != nil {
			return errorResult(fmt.Sprintf("label generation failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleListAttachments(configPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireFloat("picking_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		rt, err := newRuntime(ctx, configPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		defer rt.Close()

		attachments, err := rt.Service.Attachments(ctx, int64(id))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if len(attachments) == 0 {
			return textResult(fmt.Sprintf("No attachments for picking %d.", int64(id))), nil
		}
		return jsonResult(attachments)
	}
}

// newRuntime wires the service for one tool call. Stdout carries the MCP
// protocol, so logs are dropped.
func newRuntime(ctx context.Context, configPath string) (*bootstrap.Runtime, error) {
	return bootstrap.New(ctx, bootstrap.Options{ConfigPath: configPath, LogOutput: io.Discard})
}

// jsonResult marshals v as indented JSON and returns it as text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
