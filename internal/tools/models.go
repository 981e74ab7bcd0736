// MCP tools for the models service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerModelsGetModel exposes models.get_model as the MCP tool "models_get_model".
//
// Returns detailed information about a model.
//
// Category: read
func registerModelsGetModel(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "models_get_model",
		Description: "Returns detailed information about a model.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		modelID, err := request.RequireString("model_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("models_get_model", reg.logger(), func() (any, error) {
			return client.Models.GetModel(ctx, modelID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "models_get_model").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "models_get_model").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerModelsLinkPreprocessor exposes models.link_preprocessor as the MCP tool "models_link_preprocessor".
//
// Links a model version to a preprocessor version.
//
// Category: write
func registerModelsLinkPreprocessor(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "models_link_preprocessor",
		Description: "Links a model version to a preprocessor version.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_version_id", Type: "string", Required: true, Description: "Parameter model_version_id"},
			{Name: "preprocessor_version_id", Type: "string", Required: true, Description: "Parameter preprocessor_version_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		modelVersionID, err := request.RequireString("model_version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		preprocessorVersionID, err := request.RequireString("preprocessor_version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("models_link_preprocessor", reg.logger(), func() (any, error) {
			return client.Models.LinkPreprocessor(ctx, modelVersionID, preprocessorVersionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "models_link_preprocessor").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "models_link_preprocessor").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerModelsListModelVersionPartitions exposes models.list_model_version_partitions as the MCP tool "models_list_model_version_partitions".
//
// Lists all partitions for a model version.
//
// Category: read
func registerModelsListModelVersionPartitions(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "models_list_model_version_partitions",
		Description: "Lists all partitions for a model version.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("models_list_model_version_partitions", reg.logger(), func() (any, error) {
			return client.Models.ListModelVersionPartitions(ctx, versionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "models_list_model_version_partitions").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "models_list_model_version_partitions").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerModelsListModelVersions exposes models.list_model_versions as the MCP tool "models_list_model_versions".
//
// Lists all versions of a model.
//
// Category: read
func registerModelsListModelVersions(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "models_list_model_versions",
		Description: "Lists all versions of a model.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		modelID, err := request.RequireString("model_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("models_list_model_versions", reg.logger(), func() (any, error) {
			return client.Models.ListModelVersions(ctx, modelID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "models_list_model_versions").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "models_list_model_versions").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerModelsListTeamModels exposes models.list_team_models as the MCP tool "models_list_team_models".
//
// Lists all models for the current team.
//
// Category: read
func registerModelsListTeamModels(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "models_list_team_models",
		Description: "Lists all models for the current team.",
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
		result, err := respond.SafeCall("models_list_team_models", reg.logger(), func() (any, error) {
			return client.Models.ListTeamModels(ctx, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "models_list_team_models").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "models_list_team_models").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
