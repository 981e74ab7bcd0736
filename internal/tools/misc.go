// MCP tools for the misc service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerMiscGetModelInfo exposes misc.get_model_info as the MCP tool "misc_get_model_info".
//
// Returns model metadata for a specific version.
//
// Category: read
func registerMiscGetModelInfo(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_get_model_info",
		Description: "Returns model metadata for a specific version.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
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
		result, err := respond.SafeCall("misc_get_model_info", reg.logger(), func() (any, error) {
			return client.Misc.GetModelInfo(ctx, modelID, versionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_get_model_info").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_get_model_info").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscGetVersionInfo exposes misc.get_version_info as the MCP tool "misc_get_version_info".
//
// Returns platform and client version info.
//
// Category: read
func registerMiscGetVersionInfo(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_get_version_info",
		Description: "Returns platform and client version info.",
		Category:    registry.CategoryRead,
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		result, err := respond.SafeCall("misc_get_version_info", reg.logger(), func() (any, error) {
			return client.Misc.GetVersionInfo(ctx)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_get_version_info").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_get_version_info").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscHealthCheck exposes misc.health_check as the MCP tool "misc_health_check".
//
// Runs a health check across platform subsystems.
//
// Category: admin
func registerMiscHealthCheck(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_health_check",
		Description: "Runs a health check across platform subsystems.",
		Category:    registry.CategoryAdmin,
		Parameters: []registry.Parameter{
			{Name: "check_database", Type: "boolean", Required: false, Default: "true", Description: "Parameter check_database"},
			{Name: "check_storage", Type: "boolean", Required: false, Default: "true", Description: "Parameter check_storage"},
			{Name: "check_compute", Type: "boolean", Required: false, Default: "true", Description: "Parameter check_compute"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		checkDatabase := request.GetBool("check_database", true)
		checkStorage := request.GetBool("check_storage", true)
		checkCompute := request.GetBool("check_compute", true)
		result, err := respond.SafeCall("misc_health_check", reg.logger(), func() (any, error) {
			return client.Misc.HealthCheck(ctx, checkDatabase, checkStorage, checkCompute)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_health_check").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_health_check").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscLoadClassifier exposes misc.load_classifier as the MCP tool "misc_load_classifier".
//
// Loads a trained classifier profile.
//
// Category: read
func registerMiscLoadClassifier(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_load_classifier",
		Description: "Loads a trained classifier profile.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
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
		result, err := respond.SafeCall("misc_load_classifier", reg.logger(), func() (any, error) {
			return client.Misc.LoadClassifier(ctx, modelID, versionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_load_classifier").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_load_classifier").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscLoadRegressor exposes misc.load_regressor as the MCP tool "misc_load_regressor".
//
// Loads a trained regressor profile.
//
// Category: read
func registerMiscLoadRegressor(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_load_regressor",
		Description: "Loads a trained regressor profile.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "version_id", Type: "string", Required: true, Description: "Parameter version_id"},
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
		result, err := respond.SafeCall("misc_load_regressor", reg.logger(), func() (any, error) {
			return client.Misc.LoadRegressor(ctx, modelID, versionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_load_regressor").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_load_regressor").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscPingGateway exposes misc.ping_gateway as the MCP tool "misc_ping_gateway".
//
// Checks connectivity to the inference gateway.
//
// Category: admin
func registerMiscPingGateway(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_ping_gateway",
		Description: "Checks connectivity to the inference gateway.",
		Category:    registry.CategoryAdmin,
		Parameters: []registry.Parameter{
			{Name: "hostname", Type: "string", Required: false, Description: "Parameter hostname"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		hostname := request.GetString("hostname", "")
		result, err := respond.SafeCall("misc_ping_gateway", reg.logger(), func() (any, error) {
			return client.Misc.PingGateway(ctx, hostname)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_ping_gateway").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_ping_gateway").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerMiscPingServer exposes misc.ping_server as the MCP tool "misc_ping_server".
//
// Checks connectivity to the platform API server.
//
// Category: admin
func registerMiscPingServer(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "misc_ping_server",
		Description: "Checks connectivity to the platform API server.",
		Category:    registry.CategoryAdmin,
		Parameters: []registry.Parameter{
			{Name: "hostname", Type: "string", Required: false, Description: "Parameter hostname"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		hostname := request.GetString("hostname", "")
		result, err := respond.SafeCall("misc_ping_server", reg.logger(), func() (any, error) {
			return client.Misc.PingServer(ctx, hostname)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "misc_ping_server").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "misc_ping_server").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
