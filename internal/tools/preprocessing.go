// MCP tools for the preprocessing service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerPreprocessingGetPreprocessor exposes preprocessing.get_preprocessor as the MCP tool "preprocessing_get_preprocessor".
//
// Returns a preprocessor by id.
//
// Category: read
func registerPreprocessingGetPreprocessor(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "preprocessing_get_preprocessor",
		Description: "Returns a preprocessor by id.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "preprocessor_id", Type: "string", Required: true, Description: "Parameter preprocessor_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		preprocessorID, err := request.RequireString("preprocessor_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("preprocessing_get_preprocessor", reg.logger(), func() (any, error) {
			return client.Preprocessing.GetPreprocessor(ctx, preprocessorID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "preprocessing_get_preprocessor").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "preprocessing_get_preprocessor").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerPreprocessingListPreprocessors exposes preprocessing.list_preprocessors as the MCP tool "preprocessing_list_preprocessors".
//
// Lists preprocessors for the team.
//
// Category: read
func registerPreprocessingListPreprocessors(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "preprocessing_list_preprocessors",
		Description: "Lists preprocessors for the team.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		teamID := request.GetString("team_id", "")
		result, err := respond.SafeCall("preprocessing_list_preprocessors", reg.logger(), func() (any, error) {
			return client.Preprocessing.ListPreprocessors(ctx, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "preprocessing_list_preprocessors").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "preprocessing_list_preprocessors").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
