package xplainable

import (
	"context"
	"net/url"
)

// CollectionsService manages scenario collections attached to models.
type CollectionsService struct {
	client *Client
}

// GetTeamCollections lists all collections for the current team.
//
// Category: read
func (s *CollectionsService) GetTeamCollections(ctx context.Context) ([]Collection, error) {
	body, err := s.client.get(ctx, "/v1/collections")
	if err != nil {
		return nil, err
	}
	var items []Collection
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetModelCollections lists collections for a model.
//
// Category: read
func (s *CollectionsService) GetModelCollections(ctx context.Context, modelID string) ([]Collection, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID)+"/collections")
	if err != nil {
		return nil, err
	}
	var items []Collection
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCollectionScenarios lists scenarios for a collection.
//
// Category: read
func (s *CollectionsService) GetCollectionScenarios(ctx context.Context, collectionID string) ([]map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/collections/"+url.PathEscape(collectionID)+"/scenarios")
	if err != nil {
		return nil, err
	}
	var items []map[string]any
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateCollection creates a new collection for a model.
//
// Category: write
func (s *CollectionsService) CreateCollection(ctx context.Context, modelID string, name string, description string) (*Collection, error) {
	body, err := s.client.post(ctx, "/v1/models/"+url.PathEscape(modelID)+"/collections", map[string]any{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	var c Collection
	if err := unmarshalObject(body, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateScenarios adds scenarios to a collection.
//
// Category: write
func (s *CollectionsService) CreateScenarios(ctx context.Context, collectionID string, scenarios []map[string]any) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/collections/"+url.PathEscape(collectionID)+"/scenarios", map[string]any{
		"scenarios": scenarios,
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

// DeleteCollection deletes a collection from a model.
//
// Category: write
func (s *CollectionsService) DeleteCollection(ctx context.Context, modelID string, collectionID string) (map[string]any, error) {
	body, err := s.client.del(ctx, "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateCollectionName renames a collection.
//
// Category: write
func (s *CollectionsService) UpdateCollectionName(ctx context.Context, modelID string, collectionID string, name string) (map[string]any, error) {
	body, err := s.client.put(ctx, "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID)+"/name", map[string]any{
		"name": name,
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

// UpdateCollectionDescription updates the description of a collection.
//
// Category: write
func (s *CollectionsService) UpdateCollectionDescription(ctx context.Context, modelID string, collectionID string, description string) (map[string]any, error) {
	body, err := s.client.put(ctx, "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID)+"/description", map[string]any{
		"description": description,
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
