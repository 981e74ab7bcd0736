package xplainable

import (
	"context"
	"net/url"
)

// ModelsService provides access to model records and versions.
type ModelsService struct {
	client *Client
}

// ListTeamModels lists all models for the current team.
//
// Default team_id = ""
//
// Category: read
func (s *ModelsService) ListTeamModels(ctx context.Context, teamID string) ([]ModelSummary, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/models", teamID))
	if err != nil {
		return nil, err
	}
	var items []ModelSummary
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetModel returns detailed information about a model.
//
// Category: read
func (s *ModelsService) GetModel(ctx context.Context, modelID string) (*Model, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID))
	if err != nil {
		return nil, err
	}
	var m Model
	if err := unmarshalObject(body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListModelVersions lists all versions of a model.
//
// Category: read
func (s *ModelsService) ListModelVersions(ctx context.Context, modelID string) ([]ModelVersion, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID)+"/versions")
	if err != nil {
		return nil, err
	}
	var items []ModelVersion
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListModelVersionPartitions lists all partitions for a model version.
//
// Category: read
func (s *ModelsService) ListModelVersionPartitions(ctx context.Context, versionID string) ([]Partition, error) {
	body, err := s.client.get(ctx, "/v1/model-versions/"+url.PathEscape(versionID)+"/partitions")
	if err != nil {
		return nil, err
	}
	var items []Partition
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LinkPreprocessor links a model version to a preprocessor version.
//
// Category: write
func (s *ModelsService) LinkPreprocessor(ctx context.Context, modelVersionID string, preprocessorVersionID string) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/model-versions/"+url.PathEscape(modelVersionID)+"/link-preprocessor", map[string]any{
		"preprocessor_version_id": preprocessorVersionID,
	})
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
