package respond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

func TestNormalizeNil(t *testing.T) {
	result := Normalize(nil)
	assert.Equal(t, map[string]any{}, result)
}

func TestNormalizeDumper(t *testing.T) {
	model := xplainable.ModelSummary{ModelID: "m-1", ModelName: "churn", ModelType: "binary_classification"}

	result := Normalize(model)

	m, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "m-1", m["model_id"])
	assert.Equal(t, "churn", m["model_name"])
}

func TestNormalizeDumperSlice(t *testing.T) {
	models := []xplainable.ModelSummary{
		{ModelID: "m-1", ModelName: "churn"},
		{ModelID: "m-2", ModelName: "fraud"},
	}

	result := Normalize(models)

	list, ok := result.([]map[string]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "m-2", list[1]["model_id"])
}

func TestNormalizePassthrough(t *testing.T) {
	raw := map[string]any{"status": "ok"}
	assert.Equal(t, raw, Normalize(raw))

	items := []map[string]any{{"a": 1}}
	assert.Equal(t, items, Normalize(items))

	assert.Equal(t, "deploy-key-123", Normalize("deploy-key-123"))
	assert.Equal(t, 7, Normalize(7))
}

func TestDumpListNilIsEmpty(t *testing.T) {
	var models []xplainable.ModelSummary

	result := DumpList(models, "models_list_team_models", common.NewSilentLogger())

	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestDumpListFlattens(t *testing.T) {
	deployments := []xplainable.Deployment{
		{DeploymentID: "d-1", Active: true},
	}

	result := DumpList(deployments, "deployments_list_deployments", common.NewSilentLogger())

	require.Len(t, result, 1)
	assert.Equal(t, "d-1", result[0]["deployment_id"])
	assert.Equal(t, true, result[0]["active"])
}

func TestSafeCallNullResponseBecomesEmptyList(t *testing.T) {
	logger := common.NewSilentLogger()

	result, err := SafeCall("models_list_team_models", logger, func() (any, error) {
		return nil, xplainable.ErrNullResponse
	})

	require.NoError(t, err)
	assert.Equal(t, []map[string]any{}, result)
}

func TestSafeCallPassesErrors(t *testing.T) {
	logger := common.NewSilentLogger()
	boom := errors.New("backend unavailable")

	result, err := SafeCall("models_get_model", logger, func() (any, error) {
		return nil, boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestSafeCallRecoversPanic(t *testing.T) {
	logger := common.NewSilentLogger()

	result, err := SafeCall("models_get_model", logger, func() (any, error) {
		panic("nil pointer somewhere deep")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "models_get_model")
	assert.Nil(t, result)
}

func TestSafeCallPassesResult(t *testing.T) {
	logger := common.NewSilentLogger()

	result, err := SafeCall("misc_get_version_info", logger, func() (any, error) {
		return map[string]any{"api_version": "2.1"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"api_version": "2.1"}, result)
}
