// MCP tools for the datasets service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerDatasetsListDatasets exposes datasets.list_datasets as the MCP tool "datasets_list_datasets".
//
// Lists the sample datasets available on the platform.
//
// Category: read
func registerDatasetsListDatasets(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "datasets_list_datasets",
		Description: "Lists the sample datasets available on the platform.",
		Category:    registry.CategoryRead,
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		result, err := respond.SafeCall("datasets_list_datasets", reg.logger(), func() (any, error) {
			return client.Datasets.ListDatasets(ctx)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "datasets_list_datasets").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "datasets_list_datasets").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDatasetsListTeamDatasets exposes datasets.list_team_datasets as the MCP tool "datasets_list_team_datasets".
//
// Lists datasets owned by the team.
//
// Category: read
func registerDatasetsListTeamDatasets(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "datasets_list_team_datasets",
		Description: "Lists datasets owned by the team.",
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
		result, err := respond.SafeCall("datasets_list_team_datasets", reg.logger(), func() (any, error) {
			return client.Datasets.ListTeamDatasets(ctx, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "datasets_list_team_datasets").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "datasets_list_team_datasets").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDatasetsLoadDataset exposes datasets.load_dataset as the MCP tool "datasets_load_dataset".
//
// Loads a sample dataset by name.
//
// Category: read
func registerDatasetsLoadDataset(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "datasets_load_dataset",
		Description: "Loads a sample dataset by name.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "name", Type: "string", Required: true, Description: "Parameter name"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("datasets_load_dataset", reg.logger(), func() (any, error) {
			return client.Datasets.LoadDataset(ctx, name)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "datasets_load_dataset").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "datasets_load_dataset").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
