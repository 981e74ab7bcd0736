package xplainable

import "context"

// AutotrainService drives the GPT-assisted training pipeline, from dataset
// summarization through goal generation to model training.
type AutotrainService struct {
	client *Client
}

// autotrainBody assembles the common autotrain request payload. Optional
// fields are omitted when unset so the backend applies its own defaults.
func autotrainBody(fields map[string]any, teamID string, textgenConfig map[string]any) map[string]any {
	if teamID != "" {
		fields["team_id"] = teamID
	}
	if textgenConfig != nil {
		fields["textgen_config"] = textgenConfig
	}
	return fields
}

// SummarizeDataset summarizes a dataset file for autotrain.
//
// Default team_id = ""
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) SummarizeDataset(ctx context.Context, filePath string, teamID string, textgenConfig map[string]any) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/autotrain/summarize", autotrainBody(map[string]any{
		"file_path": filePath,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateLabels generates candidate label columns from a dataset summary.
//
// Default team_id = ""
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) GenerateLabels(ctx context.Context, summary map[string]any, teamID string, textgenConfig map[string]any) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/autotrain/labels", autotrainBody(map[string]any{
		"summary": summary,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateGoals generates modelling goals from a dataset summary.
//
// Default team_id = ""
// Default n = 5
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) GenerateGoals(ctx context.Context, summary map[string]any, teamID string, n int, textgenConfig map[string]any) (map[string]any, error) {
	if n <= 0 {
		n = 5
	}
	body, err := s.client.post(ctx, "/v1/autotrain/goals", autotrainBody(map[string]any{
		"summary": summary,
		"n":       n,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateFeatureEngineering suggests feature engineering steps from a dataset summary.
//
// Default team_id = ""
// Default n = 5
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) GenerateFeatureEngineering(ctx context.Context, summary map[string]any, teamID string, n int, textgenConfig map[string]any) (map[string]any, error) {
	if n <= 0 {
		n = 5
	}
	body, err := s.client.post(ctx, "/v1/autotrain/feature-engineering", autotrainBody(map[string]any{
		"summary": summary,
		"n":       n,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateInsights generates insights for a modelling goal.
//
// Default team_id = ""
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) GenerateInsights(ctx context.Context, goal map[string]any, summary map[string]any, teamID string, textgenConfig map[string]any) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/autotrain/insights", autotrainBody(map[string]any{
		"goal":    goal,
		"summary": summary,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// VisualizeData generates visualization code for a modelling goal.
//
// Default team_id = ""
// Default library = "plotly"
// Default textgen_config = nil
//
// Category: read
func (s *AutotrainService) VisualizeData(ctx context.Context, summary map[string]any, goal map[string]any, teamID string, library string, textgenConfig map[string]any) (map[string]any, error) {
	if library == "" {
		library = "plotly"
	}
	body, err := s.client.post(ctx, "/v1/autotrain/visualize", autotrainBody(map[string]any{
		"summary": summary,
		"goal":    goal,
		"library": library,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CheckTrainingStatus returns the status of an autotrain run.
//
// Default team_id = ""
//
// Category: read
func (s *AutotrainService) CheckTrainingStatus(ctx context.Context, trainingID string, teamID string) (map[string]any, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/autotrain/status/"+trainingID, teamID))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StartAutotrain starts an autotrain run from a dataset summary.
//
// Default team_id = ""
// Default textgen_config = nil
//
// Category: write
func (s *AutotrainService) StartAutotrain(ctx context.Context, modelName string, modelDescription string, summary map[string]any, teamID string, textgenConfig map[string]any) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/autotrain/start", autotrainBody(map[string]any{
		"model_name":        modelName,
		"model_description": modelDescription,
		"summary":           summary,
	}, teamID, textgenConfig))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// TrainManual trains a model with explicit settings.
//
// Default team_id = ""
// Default drop_columns = nil
//
// Category: write
func (s *AutotrainService) TrainManual(ctx context.Context, label string, modelName string, modelDescription string, preprocessorID string, versionID string, teamID string, dropColumns []string) (map[string]any, error) {
	fields := map[string]any{
		"label":             label,
		"model_name":        modelName,
		"model_description": modelDescription,
		"preprocessor_id":   preprocessorID,
		"version_id":        versionID,
	}
	if len(dropColumns) > 0 {
		fields["drop_columns"] = dropColumns
	}
	body, err := s.client.post(ctx, "/v1/autotrain/train", autotrainBody(fields, teamID, nil))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
