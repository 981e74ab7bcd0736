// MCP tools for the collections service of the platform client.
// Auto-generated and maintained by the xplainable-client sync workflow.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/respond"
)

// registerCollectionsCreateCollection exposes collections.create_collection as the MCP tool "collections_create_collection".
//
// Creates a new collection for a model.
//
// Category: write
func registerCollectionsCreateCollection(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_create_collection",
		Description: "Creates a new collection for a model.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "name", Type: "string", Required: true, Description: "Parameter name"},
			{Name: "description", Type: "string", Required: true, Description: "Parameter description"},
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
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("collections_create_collection", reg.logger(), func() (any, error) {
			return client.Collections.CreateCollection(ctx, modelID, name, description)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_create_collection").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_create_collection").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsCreateScenarios exposes collections.create_scenarios as the MCP tool "collections_create_scenarios".
//
// Adds scenarios to a collection.
//
// Category: write
func registerCollectionsCreateScenarios(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_create_scenarios",
		Description: "Adds scenarios to a collection.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "collection_id", Type: "string", Required: true, Description: "Parameter collection_id"},
			{Name: "scenarios", Type: "object_list", Required: true, Description: "Parameter scenarios"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		collectionID, err := request.RequireString("collection_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		scenarios := objectListArg(request, "scenarios")
		if scenarios == nil {
			return mcp.NewToolResultError("required argument \"scenarios\" not found"), nil
		}
		result, err := respond.SafeCall("collections_create_scenarios", reg.logger(), func() (any, error) {
			return client.Collections.CreateScenarios(ctx, collectionID, scenarios)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_create_scenarios").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_create_scenarios").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsDeleteCollection exposes collections.delete_collection as the MCP tool "collections_delete_collection".
//
// Deletes a collection from a model.
//
// Category: write
func registerCollectionsDeleteCollection(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_delete_collection",
		Description: "Deletes a collection from a model.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "collection_id", Type: "string", Required: true, Description: "Parameter collection_id"},
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
		collectionID, err := request.RequireString("collection_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("collections_delete_collection", reg.logger(), func() (any, error) {
			return client.Collections.DeleteCollection(ctx, modelID, collectionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_delete_collection").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_delete_collection").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsGetCollectionScenarios exposes collections.get_collection_scenarios as the MCP tool "collections_get_collection_scenarios".
//
// Lists scenarios for a collection.
//
// Category: read
func registerCollectionsGetCollectionScenarios(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_get_collection_scenarios",
		Description: "Lists scenarios for a collection.",
		Category:    registry.CategoryRead,
		Parameters: []registry.Parameter{
			{Name: "collection_id", Type: "string", Required: true, Description: "Parameter collection_id"},
		},
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		collectionID, err := request.RequireString("collection_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("collections_get_collection_scenarios", reg.logger(), func() (any, error) {
			return client.Collections.GetCollectionScenarios(ctx, collectionID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_get_collection_scenarios").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_get_collection_scenarios").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsGetModelCollections exposes collections.get_model_collections as the MCP tool "collections_get_model_collections".
//
// Lists collections for a model.
//
// Category: read
func registerCollectionsGetModelCollections(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_get_model_collections",
		Description: "Lists collections for a model.",
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
		result, err := respond.SafeCall("collections_get_model_collections", reg.logger(), func() (any, error) {
			return client.Collections.GetModelCollections(ctx, modelID)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_get_model_collections").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_get_model_collections").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsGetTeamCollections exposes collections.get_team_collections as the MCP tool "collections_get_team_collections".
//
// Lists all collections for the current team.
//
// Category: read
func registerCollectionsGetTeamCollections(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_get_team_collections",
		Description: "Lists all collections for the current team.",
		Category:    registry.CategoryRead,
	}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := reg.client()
		if err != nil {
			return nil, err
		}
		result, err := respond.SafeCall("collections_get_team_collections", reg.logger(), func() (any, error) {
			return client.Collections.GetTeamCollections(ctx)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_get_team_collections").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_get_team_collections").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsUpdateCollectionDescription exposes collections.update_collection_description as the MCP tool "collections_update_collection_description".
//
// Updates the description of a collection.
//
// Category: write
func registerCollectionsUpdateCollectionDescription(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_update_collection_description",
		Description: "Updates the description of a collection.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "collection_id", Type: "string", Required: true, Description: "Parameter collection_id"},
			{Name: "description", Type: "string", Required: true, Description: "Parameter description"},
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
		collectionID, err := request.RequireString("collection_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		description, err := request.RequireString("description")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("collections_update_collection_description", reg.logger(), func() (any, error) {
			return client.Collections.UpdateCollectionDescription(ctx, modelID, collectionID, description)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_update_collection_description").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_update_collection_description").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}

// registerCollectionsUpdateCollectionName exposes collections.update_collection_name as the MCP tool "collections_update_collection_name".
//
// Renames a collection.
//
// Category: write
func registerCollectionsUpdateCollectionName(reg *Registrar) {
	reg.add(registry.ToolInfo{
		Name:        "collections_update_collection_name",
		Description: "Renames a collection.",
		Category:    registry.CategoryWrite,
		Parameters: []registry.Parameter{
			{Name: "model_id", Type: "string", Required: true, Description: "Parameter model_id"},
			{Name: "collection_id", Type: "string", Required: true, Description: "Parameter collection_id"},
			{Name: "name", Type: "string", Required: true, Description: "Parameter name"},
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
		collectionID, err := request.RequireString("collection_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := respond.SafeCall("collections_update_collection_name", reg.logger(), func() (any, error) {
			return client.Collections.UpdateCollectionName(ctx, modelID, collectionID, name)
		})
		if err != nil {
			reg.logger().Error().Err(err).Str("tool", "collections_update_collection_name").Msg("Tool call failed")
			return nil, err
		}
		reg.logger().Info().Str("tool", "collections_update_collection_name").Msg("Tool executed")
		return toolResult(respond.Normalize(result))
	})
}
