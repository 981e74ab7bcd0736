package xplainable

import (
	"context"
	"net/url"
)

// MiscService covers diagnostics and profile loading endpoints that do not
// belong to a single API area.
type MiscService struct {
	client *Client
}

// GetVersionInfo returns platform and client version info.
//
// Category: read
func (s *MiscService) GetVersionInfo(ctx context.Context) (*VersionInfo, error) {
	body, err := s.client.get(ctx, "/v1/version")
	if err != nil {
		return nil, err
	}
	var v VersionInfo
	if err := unmarshalObject(body, &v); err != nil {
		return nil, err
	}
	if v.ClientVersion == "" {
		v.ClientVersion = Version
	}
	return &v, nil
}

// PingServer checks connectivity to the platform API server.
//
// Default hostname = ""
//
// Category: admin
func (s *MiscService) PingServer(ctx context.Context, hostname string) (map[string]any, error) {
	path := "/v1/ping"
	if hostname != "" {
		path += "?hostname=" + url.QueryEscape(hostname)
	}
	body, err := s.client.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PingGateway checks connectivity to the inference gateway.
//
// Default hostname = ""
//
// Category: admin
func (s *MiscService) PingGateway(ctx context.Context, hostname string) (map[string]any, error) {
	path := "/v1/gateway/ping"
	if hostname != "" {
		path += "?hostname=" + url.QueryEscape(hostname)
	}
	body, err := s.client.get(ctx, path)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck runs a health check across platform subsystems.
//
// Default check_database = true
// Default check_storage = true
// Default check_compute = true
//
// Category: admin
func (s *MiscService) HealthCheck(ctx context.Context, checkDatabase bool, checkStorage bool, checkCompute bool) (map[string]any, error) {
	body, err := s.client.post(ctx, "/v1/health", map[string]any{
		"check_database": checkDatabase,
		"check_storage":  checkStorage,
		"check_compute":  checkCompute,
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

// GetModelInfo returns model metadata for a specific version.
//
// Category: read
func (s *MiscService) GetModelInfo(ctx context.Context, modelID string, versionID string) (map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID)+"/versions/"+url.PathEscape(versionID)+"/info")
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadClassifier loads a trained classifier profile.
//
// Category: read
func (s *MiscService) LoadClassifier(ctx context.Context, modelID string, versionID string) (map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID)+"/versions/"+url.PathEscape(versionID)+"/classifier")
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadRegressor loads a trained regressor profile.
//
// Category: read
func (s *MiscService) LoadRegressor(ctx context.Context, modelID string, versionID string) (map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/models/"+url.PathEscape(modelID)+"/versions/"+url.PathEscape(versionID)+"/regressor")
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
