package xplainable

import (
	"context"
	"net/url"
)

// PreprocessingService provides access to stored preprocessing pipelines.
type PreprocessingService struct {
	client *Client
}

// ListPreprocessors lists preprocessors for the team.
//
// Default team_id = ""
//
// Category: read
func (s *PreprocessingService) ListPreprocessors(ctx context.Context, teamID string) ([]Preprocessor, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/preprocessors", teamID))
	if err != nil {
		return nil, err
	}
	var items []Preprocessor
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetPreprocessor returns a preprocessor by id.
//
// Category: read
func (s *PreprocessingService) GetPreprocessor(ctx context.Context, preprocessorID string) (*Preprocessor, error) {
	body, err := s.client.get(ctx, "/v1/preprocessors/"+url.PathEscape(preprocessorID))
	if err != nil {
		return nil, err
	}
	var p Preprocessor
	if err := unmarshalObject(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
