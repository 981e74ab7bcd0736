// MCP tools for the inference service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerInferencePredict exposes inference.predict as the MCP tool "inference_predict".
//
// Predicts the target column of a dataset.
//
// Category: read
func registerInferencePredict(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "inference_predict",
		Description: "Predicts the target column of a dataset.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "filename", Type: "string", Required: true, Description: "Parameter filename"},
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "threshold", Type: "number", Required: false, Default: "0.5", Description: "Parameter threshold"},
			{Name: "delimiter", Type: "string", Required: false, Default: ", ", Description: "Parameter delimiter"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		filename, err := request.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modelID, err := request.RequireString("model_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		threshold := request.GetFloat("threshold", 0.5)
		delimiter := request.GetString("delimiter", ", ")
		result, err := respond.SafeCall("inference_predict", reg.logger(), func() (any, error) {
			return client.Inference.Predict(ctx, filename, modelID, versionID, threshold, delimiter)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "inference_predict").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "inference_predict").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerInferenceStreamPredictions exposes inference.stream_predictions as the MCP tool "inference_stream_predictions".
//
// Streams predictions for large datasets in batches.
//
// Category: read
func registerInferenceStreamPredictions(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "inference_stream_predictions",
		Description: "Streams predictions for large datasets in batches.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "filename", Type: "string", Required: true, Description: "Parameter filename"},
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
			{Name: "threshold", Type: "number", Required: false, Default: "0.5", Description: "Parameter threshold"},
			{Name: "delimiter", Type: "string", Required: false, Default: ", ", Description: "Parameter delimiter"},
			{Name: "batch_size", Type: "integer", Required: false, Default: "1000", Description: "Parameter batch_size"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		filename, err := request.RequireString("filename")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		modelID, err := request.RequireString("model_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		versionID, err := request.RequireString("version_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		threshold := request.GetFloat("threshold", 0.5)
		delimiter := request.GetString("delimiter", ", ")
		batchSize := request.GetInt("batch_size", 1000)
		result, err := respond.SafeCall("inference_stream_predictions", reg.logger(), func() (any, error) {
			return client.Inference.StreamPredictions(ctx, filename, modelID, versionID, threshold, delimiter, batchSize)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "inference_stream_predictions").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "inference_stream_predictions").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
