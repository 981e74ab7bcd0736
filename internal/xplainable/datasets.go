package xplainable

import (
	"context"
	"net/url"
)

// DatasetsService provides access to sample and team datasets.
type DatasetsService struct {
	client *Client
}

// ListDatasets lists the sample datasets available on the platform.
//
// Category: read
func (s *DatasetsService) ListDatasets(ctx context.Context) ([]Dataset, error) {
	body, err := s.client.get(ctx, "/v1/datasets")
	if err != nil {
		return nil, err
	}
	var items []Dataset
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListTeamDatasets lists datasets owned by the team.
//
// Default team_id = ""
//
// Category: read
func (s *DatasetsService) ListTeamDatasets(ctx context.Context, teamID string) ([]Dataset, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/team-datasets", teamID))
	if err != nil {
		return nil, err
	}
	var items []Dataset
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadDataset loads a sample dataset by name.
//
// Category: read
func (s *DatasetsService) LoadDataset(ctx context.Context, name string) (map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/datasets/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
