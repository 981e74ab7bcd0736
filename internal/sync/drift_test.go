package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

// The committed tool files must match what the generator would emit for the
// current client, so a sync run against this tree is a no-op.
func TestCommittedToolFilesMatchCodegen(t *testing.T) {
	result, err := IntrospectClient(filepath.Join("..", "xplainable"), common.NewSilentLogger())
	require.NoError(t, err)
	require.NotEmpty(t, result.Methods)

	for _, m := range result.Methods {
		path := filepath.Join("..", "tools", m.Module+".go")
		src, err := os.ReadFile(path)
		require.NoError(t, err, "tool file for module %s", m.Module)

		blocks, err := registerBlocks(src)
		require.NoError(t, err)

		existing := blocks[registerFuncName(m)]
		require.Len(t, existing, 1, "tool %s", m.ToolName())
		assert.True(t,
			normalizedEqual(string(src[existing[0].start:existing[0].end]), RenderToolBlock(m)),
			"committed block for %s drifted from generator output", m.ToolName())
	}
}

func TestCommittedAggregatorMatchesCodegen(t *testing.T) {
	result, err := IntrospectClient(filepath.Join("..", "xplainable"), common.NewSilentLogger())
	require.NoError(t, err)

	funcNames := make([]string, 0, len(result.Methods))
	for _, m := range result.Methods {
		funcNames = append(funcNames, registerFuncName(m))
	}

	src, err := os.ReadFile(filepath.Join("..", "tools", "register.go"))
	require.NoError(t, err)

	assert.True(t, normalizedEqual(string(src), RenderAggregator(funcNames)),
		"committed register.go drifted from generator output")
}
