package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	cases := map[string]string{
		"GetModel":                      "get_model",
		"ListTeamModels":                "list_team_models",
		"ModelID":                       "model_id",
		"GetActiveTeamDeployKeysCount":  "get_active_team_deploy_keys_count",
		"GenerateFeatureEngineering":    "generate_feature_engineering",
		"modelVersionID":                "model_version_id",
		"Bar":                           "bar",
		"n":                             "n",
	}
	for in, want := range cases {
		assert.Equal(t, want, camelToSnake(in), "camelToSnake(%q)", in)
	}
}

func TestSnakeToLowerCamel(t *testing.T) {
	cases := map[string]string{
		"model_id":          "modelID",
		"team_id":           "teamID",
		"days_until_expiry": "daysUntilExpiry",
		"textgen_config":    "textgenConfig",
		"n":                 "n",
	}
	for in, want := range cases {
		assert.Equal(t, want, snakeToLowerCamel(in), "snakeToLowerCamel(%q)", in)
	}
}

func TestSnakeToUpperCamel(t *testing.T) {
	assert.Equal(t, "ModelsGetModel", snakeToUpperCamel("models_get_model"))
	assert.Equal(t, "FooBar", snakeToUpperCamel("foo_bar"))
}

func TestRegisterFuncName(t *testing.T) {
	m := Method{Module: "models", Name: "get_model"}
	assert.Equal(t, "registerModelsGetModel", registerFuncName(m))
}
