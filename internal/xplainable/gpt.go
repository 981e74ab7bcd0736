package xplainable

import "context"

// GPTService generates natural-language analyses of trained models.
type GPTService struct {
	client *Client
}

// ExplainModel returns a natural language explanation of a model.
//
// Default language = "en"
// Default detail_level = "medium"
//
// Category: read
func (s *GPTService) ExplainModel(ctx context.Context, modelID string, versionID string, language string, detailLevel string) (*Report, error) {
	if language == "" {
		language = "en"
	}
	if detailLevel == "" {
		detailLevel = "medium"
	}
	body, err := s.client.post(ctx, "/v1/gpt/explain", map[string]any{
		"model_id":     modelID,
		"version_id":   versionID,
		"language":     language,
		"detail_level": detailLevel,
	})
	if err != nil {
		return nil, err
	}
	var r Report
	if err := unmarshalObject(body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GenerateDocumentation generates comprehensive documentation for a model.
//
// Default include_technical = true
// Default include_business = true
// Default format = "markdown"
//
// Category: read
func (s *GPTService) GenerateDocumentation(ctx context.Context, modelID string, versionID string, includeTechnical bool, includeBusiness bool, format string) (*Report, error) {
	if format == "" {
		format = "markdown"
	}
	body, err := s.client.post(ctx, "/v1/gpt/documentation", map[string]any{
		"model_id":          modelID,
		"version_id":        versionID,
		"include_technical": includeTechnical,
		"include_business":  includeBusiness,
		"format":            format,
	})
	if err != nil {
		return nil, err
	}
	var r Report
	if err := unmarshalObject(body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GenerateReport generates a GPT-powered report for a model version.
//
// Default target_description = "text"
// Default project_objective = "text"
// Default max_features = 15
// Default temperature = 0.7
//
// Category: write
func (s *GPTService) GenerateReport(ctx context.Context, modelID string, versionID string, targetDescription string, projectObjective string, maxFeatures int, temperature float64) (*Report, error) {
	if targetDescription == "" {
		targetDescription = "text"
	}
	if projectObjective == "" {
		projectObjective = "text"
	}
	if maxFeatures <= 0 {
		maxFeatures = 15
	}
	body, err := s.client.post(ctx, "/v1/gpt/report", map[string]any{
		"model_id":           modelID,
		"version_id":         versionID,
		"target_description": targetDescription,
		"project_objective":  projectObjective,
		"max_features":       maxFeatures,
		"temperature":        temperature,
	})
	if err != nil {
		return nil, err
	}
	var r Report
	if err := unmarshalObject(body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
