package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleToolFile = `// Models service MCP tools.
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
		_ = respond.Normalize(nil)
		return nil, nil
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
		return nil, nil
	})
}
`

func writeSampleToolFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(sampleToolFile), 0o644)
	require.NoError(t, err)
	return dir
}

func TestStaticScannerExtractsTools(t *testing.T) {
	dir := writeSampleToolFile(t)
	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: true}

	tools, err := scanner.Scan()
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.Equal(t, "models_get_model", tools[0].Name)
	assert.Equal(t, "Returns detailed information about a model.", tools[0].Description)
	assert.Equal(t, CategoryRead, tools[0].Category)
	require.Len(t, tools[0].Parameters, 1)
	assert.Equal(t, "model_id", tools[0].Parameters[0].Name)
	assert.True(t, tools[0].Parameters[0].Required)

	assert.Equal(t, "models_link_preprocessor", tools[1].Name)
	assert.Equal(t, CategoryWrite, tools[1].Category)
	require.Len(t, tools[1].Parameters, 2)
}

func TestStaticScannerWriteGatingFlagsEnabled(t *testing.T) {
	dir := writeSampleToolFile(t)
	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: false}

	tools, err := scanner.Scan()
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.True(t, tools[0].Enabled)
	assert.False(t, tools[1].Enabled)
}

func TestStaticScannerSkipsTestFiles(t *testing.T) {
	dir := writeSampleToolFile(t)
	err := os.WriteFile(filepath.Join(dir, "models_test.go"), []byte("package tools\n"), 0o644)
	require.NoError(t, err)

	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: true}
	tools, err := scanner.Scan()
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}

func TestStaticScannerSkipsUnparseableFile(t *testing.T) {
	dir := writeSampleToolFile(t)
	err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package tools\nfunc bad( {"), 0o644)
	require.NoError(t, err)

	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: true}
	tools, err := scanner.Scan()
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}

func TestStaticScannerDiscoverSnapshot(t *testing.T) {
	dir := writeSampleToolFile(t)
	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: true}

	snap, err := scanner.Discover()
	require.NoError(t, err)

	assert.Equal(t, 2, snap.TotalTools)
	assert.Equal(t, 2, snap.EnabledTools)
	assert.Equal(t, 1, snap.Summary.ReadTools)
	assert.Equal(t, 1, snap.Summary.WriteTools)
	assert.True(t, snap.Summary.WriteToolsEnabled)
	assert.Equal(t, []string{"models_link_preprocessor"}, snap.Categories["write"])
}

func TestStaticScannerSnapshotCountsEnabled(t *testing.T) {
	dir := writeSampleToolFile(t)
	scanner := &StaticScanner{Dir: dir, WriteToolsEnabled: false}

	snap, err := scanner.Discover()
	require.NoError(t, err)

	// The disabled write tool is listed but not counted as enabled.
	assert.Equal(t, 2, snap.TotalTools)
	assert.Equal(t, 1, snap.EnabledTools)
}
