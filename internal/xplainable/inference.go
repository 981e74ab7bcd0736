package xplainable

import "context"

// InferenceService runs predictions against trained models.
type InferenceService struct {
	client *Client
}

// Predict predicts the target column of a dataset.
//
// Default threshold = 0.5
// Default delimiter = ", "
//
// Category: read
func (s *InferenceService) Predict(ctx context.Context, filename string, modelID string, versionID string, threshold float64, delimiter string) (map[string]any, error) {
	if delimiter == "" {
		delimiter = ", "
	}
	body, err := s.client.post(ctx, "/v1/inference/predict", map[string]any{
		"filename":   filename,
		"model_id":   modelID,
		"version_id": versionID,
		"threshold":  threshold,
		"delimiter":  delimiter,
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

// StreamPredictions streams predictions for large datasets in batches.
//
// Default threshold = 0.5
// Default delimiter = ", "
// Default batch_size = 1000
//
// Category: read
func (s *InferenceService) StreamPredictions(ctx context.Context, filename string, modelID string, versionID string, threshold float64, delimiter string, batchSize int) ([]map[string]any, error) {
	if delimiter == "" {
		delimiter = ", "
	}
	if batchSize <= 0 {
		batchSize = 1000
	}
	body, err := s.client.post(ctx, "/v1/inference/stream", map[string]any{
		"filename":   filename,
		"model_id":   modelID,
		"version_id": versionID,
		"threshold":  threshold,
		"delimiter":  delimiter,
		"batch_size": batchSize,
	})
	if err != nil {
		return nil, err
	}
	var items []map[string]any
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}
