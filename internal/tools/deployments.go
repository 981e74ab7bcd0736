// MCP tools for the deployments service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerDeploymentsActivateDeployment exposes deployments.activate_deployment as the MCP tool "deployments_activate_deployment".
//
// Activates a deployment.
//
// Category: write
func registerDeploymentsActivateDeployment(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_activate_deployment",
		Description: "Activates a deployment.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "deployment_id", Type: "string", Required: true, Description: "Parameter deployment_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		deploymentID, err := request.RequireString("deployment_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("deployments_activate_deployment", reg.logger(), func() (any, error) {
			return client.Deployments.ActivateDeployment(ctx, deploymentID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_activate_deployment").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_activate_deployment").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsDeactivateDeployment exposes deployments.deactivate_deployment as the MCP tool "deployments_deactivate_deployment".
//
// Deactivates a deployment.
//
// Category: write
func registerDeploymentsDeactivateDeployment(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_deactivate_deployment",
		Description: "Deactivates a deployment.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "deployment_id", Type: "string", Required: true, Description: "Parameter deployment_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		deploymentID, err := request.RequireString("deployment_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("deployments_deactivate_deployment", reg.logger(), func() (any, error) {
			return client.Deployments.DeactivateDeployment(ctx, deploymentID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_deactivate_deployment").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_deactivate_deployment").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsDeploy exposes deployments.deploy as the MCP tool "deployments_deploy".
//
// Creates a deployment for a model version.
//
// Category: write
func registerDeploymentsDeploy(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_deploy",
		Description: "Creates a deployment for a model version.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_version_id", Type: "string", Required: true, Description: "Parameter model_version_id"},
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
		result, err := respond.SafeCall("deployments_deploy", reg.logger(), func() (any, error) {
			return client.Deployments.Deploy(ctx, modelVersionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_deploy").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_deploy").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsGenerateDeployKey exposes deployments.generate_deploy_key as the MCP tool "deployments_generate_deploy_key".
//
// Generates a deploy key for a deployment.
//
// Category: write
func registerDeploymentsGenerateDeployKey(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_generate_deploy_key",
		Description: "Generates a deploy key for a deployment.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "deployment_id", Type: "string", Required: true, Description: "Parameter deployment_id"},
			{Name: "description", Type: "string", Required: false, Description: "Parameter description"},
			{Name: "days_until_expiry", Type: "integer", Required: false, Default: "90", Description: "Parameter days_until_expiry"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		deploymentID, err := request.RequireString("deployment_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		description := request.GetString("description", "")
		daysUntilExpiry := request.GetInt("days_until_expiry", 90)
		result, err := respond.SafeCall("deployments_generate_deploy_key", reg.logger(), func() (any, error) {
			return client.Deployments.GenerateDeployKey(ctx, deploymentID, description, daysUntilExpiry)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_generate_deploy_key").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_generate_deploy_key").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsGetActiveTeamDeployKeysCount exposes deployments.get_active_team_deploy_keys_count as the MCP tool "deployments_get_active_team_deploy_keys_count".
//
// Returns the count of active deploy keys for a team.
//
// Category: read
func registerDeploymentsGetActiveTeamDeployKeysCount(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_get_active_team_deploy_keys_count",
		Description: "Returns the count of active deploy keys for a team.",
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
		result, err := respond.SafeCall("deployments_get_active_team_deploy_keys_count", reg.logger(), func() (any, error) {
			return client.Deployments.GetActiveTeamDeployKeysCount(ctx, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_get_active_team_deploy_keys_count").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_get_active_team_deploy_keys_count").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsGetDeploymentPayload exposes deployments.get_deployment_payload as the MCP tool "deployments_get_deployment_payload".
//
// Returns sample payload data for a deployment.
//
// Category: read
func registerDeploymentsGetDeploymentPayload(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_get_deployment_payload",
		Description: "Returns sample payload data for a deployment.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "deployment_id", Type: "string", Required: true, Description: "Parameter deployment_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		deploymentID, err := request.RequireString("deployment_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("deployments_get_deployment_payload", reg.logger(), func() (any, error) {
			return client.Deployments.GetDeploymentPayload(ctx, deploymentID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_get_deployment_payload").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_get_deployment_payload").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerDeploymentsListDeployments exposes deployments.list_deployments as the MCP tool "deployments_list_deployments".
//
// Lists deployments for the team.
//
// Category: read
func registerDeploymentsListDeployments(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "deployments_list_deployments",
		Description: "Lists deployments for the team.",
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
		result, err := respond.SafeCall("deployments_list_deployments", reg.logger(), func() (any, error) {
			return client.Deployments.ListDeployments(ctx, teamID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "deployments_list_deployments").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "deployments_list_deployments").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
