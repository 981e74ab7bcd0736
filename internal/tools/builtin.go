package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
)

// addBuiltinTools registers the handwritten tools that exist independently
// of the client sync: runtime tool discovery and connection diagnostics.
func addBuiltinTools(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "list_tools",
		Description: "Lists every registered tool with its category, parameters, and summary counts.",
		Category:    registry.CategoryDiscovery,
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(reg.Registry().Snapshot())
	})

	reg.add(registry.ToolInfo{
		Name:        "get_connection_info",
		Description: "Returns platform connection details for the current session, excluding credentials.",
		Category:    registry.CategoryRead,
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		return toolResult(client.ConnectionInfo())
	})
}
