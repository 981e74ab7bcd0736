package sync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

func fixtureMethods(t *testing.T) []Method {
	t.Helper()
	dir := writeFixtureClient(t)
	result, err := IntrospectClient(dir, common.NewSilentLogger())
	require.NoError(t, err)
	return result.Methods
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMergerCreatesToolFile(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}

	results, err := merger.Apply(fixtureMethods(t))
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, ActionCreated, r.Action)
		assert.Equal(t, "foo.go", r.File)
	}

	content := readFile(t, filepath.Join(toolsDir, "foo.go"))
	assert.Contains(t, content, "func registerFooBar(reg *Registrar)")
	assert.Contains(t, content, `Name:        "foo_bar",`)
	assert.Contains(t, content, `itemID, err := request.RequireString("item_id")`)
	assert.Contains(t, content, `limit := request.GetInt("limit", 5)`)
	assert.Contains(t, content, "return client.Foo.Bar(ctx, itemID, limit)")

	aggregator := readFile(t, filepath.Join(toolsDir, "register.go"))
	assert.Contains(t, aggregator, "registerFooBar(reg)")
	assert.Contains(t, aggregator, "registerFooCreateThing(reg)")
	assert.Contains(t, aggregator, "DO NOT EDIT")
}

func TestMergerIsIdempotent(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	_, err := merger.Apply(methods)
	require.NoError(t, err)
	first := readFile(t, filepath.Join(toolsDir, "foo.go"))
	firstAggregator := readFile(t, filepath.Join(toolsDir, "register.go"))

	results, err := merger.Apply(methods)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, ActionSkipped, r.Action, "tool %s", r.Tool)
	}

	assert.Equal(t, first, readFile(t, filepath.Join(toolsDir, "foo.go")))
	assert.Equal(t, firstAggregator, readFile(t, filepath.Join(toolsDir, "register.go")))
}

func TestMergerAppendsNewTools(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	_, err := merger.Apply(methods[:1])
	require.NoError(t, err)

	results, err := merger.Apply(methods)
	require.NoError(t, err)

	byTool := map[string]MergeAction{}
	for _, r := range results {
		byTool[r.Tool] = r.Action
	}
	assert.Equal(t, ActionSkipped, byTool["foo_bar"])
	assert.Equal(t, ActionAppended, byTool["foo_create_thing"])
}

func TestMergerReplacesChangedBlocks(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	_, err := merger.Apply(methods)
	require.NoError(t, err)

	changed := make([]Method, len(methods))
	copy(changed, methods)
	changed[0].Description = "Returns bar data with new semantics."

	results, err := merger.Apply(changed)
	require.NoError(t, err)

	byTool := map[string]MergeAction{}
	for _, r := range results {
		byTool[r.Tool] = r.Action
	}
	assert.Equal(t, ActionReplaced, byTool["foo_bar"])

	content := readFile(t, filepath.Join(toolsDir, "foo.go"))
	assert.Contains(t, content, "Returns bar data with new semantics.")
	assert.NotContains(t, content, "Returns bar data for an item.")
}

func TestMergerReplacesBlocksInPlace(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	_, err := merger.Apply(methods)
	require.NoError(t, err)

	path := filepath.Join(toolsDir, "foo.go")
	before := readFile(t, path)
	require.Less(t,
		strings.Index(before, "func registerFooBar(reg *Registrar)"),
		strings.Index(before, "func registerFooCreateThing(reg *Registrar)"))

	changed := make([]Method, len(methods))
	copy(changed, methods)
	changed[0].Description = "Returns bar data with new semantics."

	_, err = merger.Apply(changed)
	require.NoError(t, err)

	// The replaced block stays where its first definition was instead of
	// migrating to the end of the file.
	after := readFile(t, path)
	assert.Less(t,
		strings.Index(after, "func registerFooBar(reg *Registrar)"),
		strings.Index(after, "func registerFooCreateThing(reg *Registrar)"))
}

func TestMergerCollapsesDuplicatesUnderForce(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Force: true, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	_, err := merger.Apply(methods)
	require.NoError(t, err)

	// Simulate a bad manual merge that duplicated a tool block.
	path := filepath.Join(toolsDir, "foo.go")
	content := readFile(t, path)
	block := RenderToolBlock(methods[0])
	require.NoError(t, os.WriteFile(path, []byte(content+"\n"+block), 0o644))
	assert.Equal(t, 2, strings.Count(readFile(t, path), "func registerFooBar(reg *Registrar)"))

	results, err := merger.Apply(methods)
	require.NoError(t, err)

	byTool := map[string]MergeResult{}
	for _, r := range results {
		byTool[r.Tool] = r
	}
	assert.Equal(t, ActionReplaced, byTool["foo_bar"].Action)
	assert.Contains(t, byTool["foo_bar"].Reason, "duplicate")

	assert.Equal(t, 1, strings.Count(readFile(t, path), "func registerFooBar(reg *Registrar)"))
}

func TestMergerSkipsUnparseableFile(t *testing.T) {
	toolsDir := t.TempDir()
	merger := &Merger{ToolsDir: toolsDir, Logger: common.NewSilentLogger()}
	methods := fixtureMethods(t)

	path := filepath.Join(toolsDir, "foo.go")
	require.NoError(t, os.WriteFile(path, []byte("package tools\nfunc broken( {"), 0o644))

	results, err := merger.Apply(methods)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, ActionFailed, r.Action)
	}

	// Original content untouched.
	assert.Contains(t, readFile(t, path), "func broken(")
}

func TestRenderServiceFileIsFormatted(t *testing.T) {
	methods := fixtureMethods(t)
	content := RenderServiceFile("foo", methods)

	assert.True(t, strings.HasPrefix(content, "// MCP tools for the foo service of the platform client.\n"))
	assert.Contains(t, content, "package tools")
	assert.Contains(t, content, `"github.com/xplainable-io/xplainable-mcp-go/internal/registry"`)
}
