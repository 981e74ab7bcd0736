// MCP tools for the gpt service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerGptExplainModel exposes gpt.explain_model as the MCP tool "gpt_explain_model".
//
// Returns a natural language explanation of a model.
//
// Category: read
func registerGptExplainModel(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "gpt_explain_model",
		Description: "Returns a natural language explanation of a model.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "language", Type: "string", Required: false, Default: "en", Description: "Parameter language"},
			{Name: "detail_level", Type: "string", Required: false, Default: "medium", Description: "Parameter detail_level"},
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
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		language := request.GetString("language", "en")
		detailLevel := request.GetString("detail_level", "medium")
		result, err := respond.SafeCall("gpt_explain_model", reg.logger(), func() (any, error) {
			return client.GPT.ExplainModel(ctx, modelID, versionID, language, detailLevel)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "gpt_explain_model").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "gpt_explain_model").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerGptGenerateDocumentation exposes gpt.generate_documentation as the MCP tool "gpt_generate_documentation".
//
// Generates comprehensive documentation for a model.
//
// Category: read
func registerGptGenerateDocumentation(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "gpt_generate_documentation",
		Description: "Generates comprehensive documentation for a model.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "include_technical", Type: "boolean", Required: false, Default: "true", Description: "Parameter include_technical"},
			{Name: "include_business", Type: "boolean", Required: false, Default: "true", Description: "Parameter include_business"},
			{Name: "format", Type: "string", Required: false, Default: "markdown", Description: "Parameter format"},
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
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		includeTechnical := request.GetBool("include_technical", true)
		includeBusiness := request.GetBool("include_business", true)
		format := request.GetString("format", "markdown")
		result, err := respond.SafeCall("gpt_generate_documentation", reg.logger(), func() (any, error) {
			return client.GPT.GenerateDocumentation(ctx, modelID, versionID, includeTechnical, includeBusiness, format)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "gpt_generate_documentation").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "gpt_generate_documentation").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerGptGenerateReport exposes gpt.generate_report as the MCP tool "gpt_generate_report".
//
// Generates a GPT-powered report for a model version.
//
// Category: write
func registerGptGenerateReport(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "gpt_generate_report",
		Description: "Generates a GPT-powered report for a model version.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "target_description", Type: "string", Required: false, Default: "text", Description: "Parameter target_description"},
			{Name: "project_objective", Type: "string", Required: false, Default: "text", Description: "Parameter project_objective"},
			{Name: "max_features", Type: "integer", Required: false, Default: "15", Description: "Parameter max_features"},
			{Name: "temperature", Type: "number", Required: false, Default: "0.7", Description: "Parameter temperature"},
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
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		targetDescription := request.GetString("target_description", "text")
		projectObjective := request.GetString("project_objective", "text")
		maxFeatures := request.GetInt("max_features", 15)
		temperature := request.GetFloat("temperature", 0.7)
		result, err := respond.SafeCall("gpt_generate_report", reg.logger(), func() (any, error) {
			return client.GPT.GenerateReport(ctx, modelID, versionID, targetDescription, projectObjective, maxFeatures, temperature)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "gpt_generate_report").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "gpt_generate_report").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
