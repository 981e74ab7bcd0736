// MCP tools for the autotrain service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerAutotrainCheckTrainingStatus exposes autotrain.check_training_status as the MCP tool "autotrain_check_training_status".
//
// Returns the status of an autotrain run.
//
// Category: read
func registerAutotrainCheckTrainingStatus(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_check_training_status",
		Description: "Returns the status of an autotrain run.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "training_id", Type: "string", Required: true, Description: "Parameter training_id"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		trainingID, err := request.RequireString("training_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		teamID := request.GetString("team_id", "")
		result, err := respond.SafeCall("autotrain_check_training_status", reg.logger(), func() (any, error) {
			return client.Autotrain.CheckTrainingStatus(ctx, trainingID, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_check_training_status").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_check_training_status").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainGenerateFeatureEngineering exposes autotrain.generate_feature_engineering as the MCP tool "autotrain_generate_feature_engineering".
//
// Suggests feature engineering steps from a dataset summary.
//
// Category: read
func registerAutotrainGenerateFeatureEngineering(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_generate_feature_engineering",
		Description: "Suggests feature engineering steps from a dataset summary.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "n", Type: "integer", Required: false, Default: "5", Description: "Parameter n"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		n := request.GetInt("n", 5)
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_generate_feature_engineering", reg.logger(), func() (any, error) {
			return client.Autotrain.GenerateFeatureEngineering(ctx, summary, teamID, n, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_generate_feature_engineering").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_generate_feature_engineering").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainGenerateGoals exposes autotrain.generate_goals as the MCP tool "autotrain_generate_goals".
//
// Generates modelling goals from a dataset summary.
//
// Category: read
func registerAutotrainGenerateGoals(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_generate_goals",
		Description: "Generates modelling goals from a dataset summary.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "n", Type: "integer", Required: false, Default: "5", Description: "Parameter n"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		n := request.GetInt("n", 5)
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_generate_goals", reg.logger(), func() (any, error) {
			return client.Autotrain.GenerateGoals(ctx, summary, teamID, n, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_generate_goals").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_generate_goals").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainGenerateInsights exposes autotrain.generate_insights as the MCP tool "autotrain_generate_insights".
//
// Generates insights for a modelling goal.
//
// Category: read
func registerAutotrainGenerateInsights(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_generate_insights",
		Description: "Generates insights for a modelling goal.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "goal", Type: "object", Required: true, Description: "Parameter goal"},
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		goal := objectArg(request, "goal")
		if goal == nil {
			return mcp.NewToolResultError("required argument \"goal\" not found"), nil
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_generate_insights", reg.logger(), func() (any, error) {
			return client.Autotrain.GenerateInsights(ctx, goal, summary, teamID, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_generate_insights").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_generate_insights").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainGenerateLabels exposes autotrain.generate_labels as the MCP tool "autotrain_generate_labels".
//
// Generates candidate label columns from a dataset summary.
//
// Category: read
func registerAutotrainGenerateLabels(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_generate_labels",
		Description: "Generates candidate label columns from a dataset summary.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_generate_labels", reg.logger(), func() (any, error) {
			return client.Autotrain.GenerateLabels(ctx, summary, teamID, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_generate_labels").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_generate_labels").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainStartAutotrain exposes autotrain.start_autotrain as the MCP tool "autotrain_start_autotrain".
//
// Starts an autotrain run from a dataset summary.
//
// Category: write
func registerAutotrainStartAutotrain(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_start_autotrain",
		Description: "Starts an autotrain run from a dataset summary.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_name", Type: "string", Required: true, Description: "Parameter model_name"},
			{Name: "model_description", Type: "string", Required: true, Description: "Parameter model_description"},
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		modelName, err := request.RequireString("model_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modelDescription, err := request.RequireString("model_description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_start_autotrain", reg.logger(), func() (any, error) {
			return client.Autotrain.StartAutotrain(ctx, modelName, modelDescription, summary, teamID, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_start_autotrain").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_start_autotrain").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainSummarizeDataset exposes autotrain.summarize_dataset as the MCP tool "autotrain_summarize_dataset".
//
// Summarizes a dataset file for autotrain.
//
// Category: read
func registerAutotrainSummarizeDataset(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_summarize_dataset",
		Description: "Summarizes a dataset file for autotrain.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "file_path", Type: "string", Required: true, Description: "Parameter file_path"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		filePath, err := request.RequireString("file_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		teamID := request.GetString("team_id", "")
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_summarize_dataset", reg.logger(), func() (any, error) {
			return client.Autotrain.SummarizeDataset(ctx, filePath, teamID, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_summarize_dataset").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_summarize_dataset").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainTrainManual exposes autotrain.train_manual as the MCP tool "autotrain_train_manual".
//
// Trains a model with explicit settings.
//
// Category: write
func registerAutotrainTrainManual(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_train_manual",
		Description: "Trains a model with explicit settings.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "label", Type: "string", Required: true, Description: "Parameter label"},
			{Name: "model_name", Type: "string", Required: true, Description: "Parameter model_name"},
			{Name: "model_description", Type: "string", Required: true, Description: "Parameter model_description"},
			{Name: "preprocessor_id", Type: "string", Required: true, Description: "Parameter preprocessor_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "drop_columns", Type: "array", Required: false, Description: "Parameter drop_columns"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		label, err := request.RequireString("label")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modelName, err := request.RequireString("model_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modelDescription, err := request.RequireString("model_description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		preprocessorID, err := request.RequireString("preprocessor_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		teamID := request.GetString("team_id", "")
		dropColumns := request.GetStringSlice("drop_columns", nil)
		result, err := respond.SafeCall("autotrain_train_manual", reg.logger(), func() (any, error) {
			return client.Autotrain.TrainManual(ctx, label, modelName, modelDescription, preprocessorID, versionID, teamID, dropColumns)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_train_manual").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_train_manual").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerAutotrainVisualizeData exposes autotrain.visualize_data as the MCP tool "autotrain_visualize_data".
//
// Generates visualization code for a modelling goal.
//
// Category: read
func registerAutotrainVisualizeData(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "autotrain_visualize_data",
		Description: "Generates visualization code for a modelling goal.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "summary", Type: "object", Required: true, Description: "Parameter summary"},
			{Name: "goal", Type: "object", Required: true, Description: "Parameter goal"},
			{Name: "team_id", Type: "string", Required: false, Description: "Parameter team_id"},
			{Name: "library", Type: "string", Required: false, Default: "plotly", Description: "Parameter library"},
			{Name: "textgen_config", Type: "object", Required: false, Description: "Parameter textgen_config"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		summary := objectArg(request, "summary")
		if summary == nil {
			return mcp.NewToolResultError("required argument \"summary\" not found"), nil
		}
		goal := objectArg(request, "goal")
		if goal == nil {
			return mcp.NewToolResultError("required argument \"goal\" not found"), nil
		}
		teamID := request.GetString("team_id", "")
		library := request.GetString("library", "plotly")
		textgenConfig := objectArg(request, "textgen_config")
		result, err := respond.SafeCall("autotrain_visualize_data", reg.logger(), func() (any, error) {
			return client.Autotrain.VisualizeData(ctx, summary, goal, teamID, library, textgenConfig)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "autotrain_visualize_data").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "autotrain_visualize_data").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
