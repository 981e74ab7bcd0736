package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
)

const fixtureClientSource = `package xplainable

import "context"

// FooService is a test fixture service.
type FooService struct {
	client *Client
}

// Bar returns bar data for an item.
//
// Default limit = 5
//
// Category: read
func (s *FooService) Bar(ctx context.Context, itemID string, limit int) (map[string]any, error) {
	return nil, nil
}

// CreateThing creates a thing.
func (s *FooService) CreateThing(ctx context.Context, name string) (map[string]any, error) {
	return nil, nil
}

// internalHelper is not a tool.
func (s *FooService) internalHelper(ctx context.Context) error {
	return nil
}

// Broken takes an unsupported parameter type.
func (s *FooService) Broken(ctx context.Context, ch chan int) error {
	return nil
}
`

func writeFixtureClient(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "foo.go"), []byte(fixtureClientSource), 0o644)
	require.NoError(t, err)
	return dir
}

func TestIntrospectClientExtractsMethods(t *testing.T) {
	dir := writeFixtureClient(t)
	logger := common.NewSilentLogger()

	result, err := IntrospectClient(dir, logger)
	require.NoError(t, err)
	require.Len(t, result.Methods, 2)

	bar := result.Methods[0]
	assert.Equal(t, "foo", bar.Module)
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, "foo_bar", bar.ToolName())
	assert.Equal(t, "Foo", bar.ClientField)
	assert.Equal(t, "Returns bar data for an item.", bar.Description)
	assert.Equal(t, registry.CategoryRead, bar.Category)

	require.Len(t, bar.Params, 2)
	assert.Equal(t, Param{Name: "item_id", GoName: "itemID", Type: "string", Required: true}, bar.Params[0])
	assert.Equal(t, Param{Name: "limit", GoName: "limit", Type: "integer", Required: false, Default: "5"}, bar.Params[1])
}

func TestIntrospectClientCategoryHeuristic(t *testing.T) {
	dir := writeFixtureClient(t)
	logger := common.NewSilentLogger()

	result, err := IntrospectClient(dir, logger)
	require.NoError(t, err)

	create := result.Methods[1]
	assert.Equal(t, "foo_create_thing", create.ToolName())
	assert.Equal(t, registry.CategoryWrite, create.Category)
}

func TestIntrospectClientSkipsUnexportedMethods(t *testing.T) {
	dir := writeFixtureClient(t)
	logger := common.NewSilentLogger()

	result, err := IntrospectClient(dir, logger)
	require.NoError(t, err)

	for _, m := range result.Methods {
		assert.NotEqual(t, "internal_helper", m.Name)
	}
}

func TestIntrospectClientIsolatesFailures(t *testing.T) {
	dir := writeFixtureClient(t)
	logger := common.NewSilentLogger()

	result, err := IntrospectClient(dir, logger)
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Foo.Broken", result.Failures[0].Method)
	assert.Len(t, result.Methods, 2)
}

func TestIntrospectClientSkipsUnparseableFile(t *testing.T) {
	dir := writeFixtureClient(t)
	err := os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package xplainable\nfunc bad( {"), 0o644)
	require.NoError(t, err)

	result, err := IntrospectClient(dir, common.NewSilentLogger())
	require.NoError(t, err)

	assert.Len(t, result.Methods, 2)
	failed := make([]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		failed = append(failed, f.Method)
	}
	assert.Contains(t, failed, "broken.go")
}

func TestIntrospectClientRealSource(t *testing.T) {
	logger := common.NewSilentLogger()

	result, err := IntrospectClient("../xplainable", logger)
	require.NoError(t, err)

	assert.Empty(t, result.Failures)
	names := result.ToolNames()
	assert.Contains(t, names, "models_get_model")
	assert.Contains(t, names, "deployments_generate_deploy_key")
	assert.Contains(t, names, "gpt_explain_model")
	assert.Contains(t, names, "autotrain_start_autotrain")
	assert.Contains(t, names, "misc_health_check")
	assert.GreaterOrEqual(t, len(names), 40)

	for _, m := range result.Methods {
		assert.Equal(t, m.Module+"_"+m.Name, m.ToolName())
		assert.True(t, m.Category.Valid(), "category for %s", m.ToolName())
	}
}

func TestHeuristicCategory(t *testing.T) {
	assert.Equal(t, registry.CategoryWrite, heuristicCategory("create_collection"))
	assert.Equal(t, registry.CategoryWrite, heuristicCategory("deploy"))
	assert.Equal(t, registry.CategoryWrite, heuristicCategory("generate_deploy_key"))
	assert.Equal(t, registry.CategoryAdmin, heuristicCategory("admin_reset"))
	assert.Equal(t, registry.CategoryRead, heuristicCategory("get_model"))
	assert.Equal(t, registry.CategoryDiscovery, heuristicCategory("list_tools"))
}

func TestDocMarkerOverridesHeuristic(t *testing.T) {
	dir := t.TempDir()
	source := `package xplainable

import "context"

type DocsService struct {
	client *Client
}

// GenerateDocumentation generates comprehensive documentation for a model.
//
// Category: read
func (s *DocsService) GenerateDocumentation(ctx context.Context, modelID string) (map[string]any, error) {
	return nil, nil
}
`
	err := os.WriteFile(filepath.Join(dir, "docs.go"), []byte(source), 0o644)
	require.NoError(t, err)

	result, err := IntrospectClient(dir, common.NewSilentLogger())
	require.NoError(t, err)
	require.Len(t, result.Methods, 1)
	assert.Equal(t, registry.CategoryRead, result.Methods[0].Category)
}
