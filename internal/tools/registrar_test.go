package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
)

func newTestRegistrar(t *testing.T, writeToolsEnabled bool) *Registrar {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.APIKey = "test-key"
	cfg.EnableWriteTools = writeToolsEnabled
	logger := common.NewSilentLogger()
	srv := server.NewMCPServer("xplainable-mcp-test", common.GetVersion())
	return NewRegistrar(srv, registry.New(writeToolsEnabled), NewDeps(cfg, logger))
}

func TestRegisterAllWithWriteToolsEnabled(t *testing.T) {
	reg := newTestRegistrar(t, true)
	RegisterAll(reg)

	snap := reg.Registry().Snapshot()

	assert.Equal(t, 48, snap.TotalTools)
	assert.Equal(t, 48, snap.EnabledTools)
	assert.Equal(t, 31, snap.Summary.ReadTools)
	assert.Equal(t, 13, snap.Summary.WriteTools)
	assert.Equal(t, 3, snap.Summary.AdminTools)
	assert.Equal(t, 1, snap.Summary.DiscoveryTools)
	assert.True(t, snap.Summary.WriteToolsEnabled)

	_, ok := reg.Registry().Get("deployments_deploy")
	assert.True(t, ok)
	_, ok = reg.Registry().Get("models_get_model")
	assert.True(t, ok)
	_, ok = reg.Registry().Get("list_tools")
	assert.True(t, ok)
}

func TestRegisterAllWithWriteToolsDisabled(t *testing.T) {
	reg := newTestRegistrar(t, false)
	RegisterAll(reg)

	snap := reg.Registry().Snapshot()

	assert.Equal(t, 35, snap.TotalTools)
	assert.Equal(t, 35, snap.EnabledTools)
	assert.Equal(t, 0, snap.Summary.WriteTools)
	assert.False(t, snap.Summary.WriteToolsEnabled)

	// Disabled write tools are neither listed nor counted.
	_, ok := reg.Registry().Get("deployments_deploy")
	assert.False(t, ok)
	_, ok = reg.Registry().Get("collections_create_collection")
	assert.False(t, ok)

	// Read, admin, and discovery tools are unaffected.
	_, ok = reg.Registry().Get("misc_ping_server")
	assert.True(t, ok)
	_, ok = reg.Registry().Get("get_connection_info")
	assert.True(t, ok)
}

func TestRegisteredToolNamesFollowModuleMethodPattern(t *testing.T) {
	reg := newTestRegistrar(t, true)
	RegisterGenerated(reg)

	for _, info := range reg.Registry().Tools() {
		assert.Regexp(t, `^[a-z]+_[a-z0-9_]+$`, info.Name)
		assert.True(t, info.Category.Valid(), "category for %s", info.Name)
		assert.NotEmpty(t, info.Description, "description for %s", info.Name)
	}
}

func TestObjectArg(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{
		"summary": map[string]any{"columns": 12},
		"name":    "not an object",
	}

	assert.Equal(t, map[string]any{"columns": 12}, objectArg(request, "summary"))
	assert.Nil(t, objectArg(request, "name"))
	assert.Nil(t, objectArg(request, "missing"))
}

func TestObjectListArg(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{
		"scenarios": []any{
			map[string]any{"age": 42},
			map[string]any{"age": 61},
		},
	}

	scenarios := objectListArg(request, "scenarios")
	require.Len(t, scenarios, 2)
	assert.Equal(t, map[string]any{"age": 61}, scenarios[1])
	assert.Nil(t, objectListArg(request, "missing"))
}

func TestToolResultEncodesJSON(t *testing.T) {
	result, err := toolResult(map[string]any{"model_id": "m-1"})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	assert.Contains(t, text.Text, `"model_id": "m-1"`)
}
