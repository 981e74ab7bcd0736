package xplainable

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DeploymentsService manages model deployments and deploy keys.
type DeploymentsService struct {
	client *Client
}

// ListDeployments lists deployments for the team.
//
// Default team_id = ""
//
// Category: read
func (s *DeploymentsService) ListDeployments(ctx context.Context, teamID string) ([]Deployment, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/deployments", teamID))
	if err != nil {
		return nil, err
	}
	var items []Deployment
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Deploy creates a deployment for a model version.
//
// Category: write
func (s *DeploymentsService) Deploy(ctx context.Context, modelVersionID string) (*Deployment, error) {
	body, err := s.client.post(ctx, "/v1/deployments", map[string]any{
		"model_version_id": modelVersionID,
	})
	if err != nil {
		return nil, err
	}
	var d Deployment
	if err := unmarshalObject(body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ActivateDeployment activates a deployment.
//
// Category: write
func (s *DeploymentsService) ActivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error) {
	body, err := s.client.put(ctx, "/v1/deployments/"+url.PathEscape(deploymentID)+"/activate", nil)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeactivateDeployment deactivates a deployment.
//
// Category: write
func (s *DeploymentsService) DeactivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error) {
	body, err := s.client.put(ctx, "/v1/deployments/"+url.PathEscape(deploymentID)+"/deactivate", nil)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := unmarshalObject(body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateDeployKey generates a deploy key for a deployment.
//
// Default description = ""
// Default days_until_expiry = 90
//
// Category: write
func (s *DeploymentsService) GenerateDeployKey(ctx context.Context, deploymentID string, description string, daysUntilExpiry int) (string, error) {
	if daysUntilExpiry <= 0 {
		daysUntilExpiry = 90
	}
	body, err := s.client.post(ctx, "/v1/deployments/"+url.PathEscape(deploymentID)+"/deploy-keys", map[string]any{
		"description":       description,
		"days_until_expiry": daysUntilExpiry,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		DeployKey string `json:"deploy_key"`
	}
	if err := unmarshalObject(body, &resp); err != nil {
		return "", err
	}
	if resp.DeployKey == "" {
		return "", fmt.Errorf("platform returned no deploy key")
	}
	return resp.DeployKey, nil
}

// GetDeploymentPayload returns sample payload data for a deployment.
//
// Category: read
func (s *DeploymentsService) GetDeploymentPayload(ctx context.Context, deploymentID string) ([]map[string]any, error) {
	body, err := s.client.get(ctx, "/v1/deployments/"+url.PathEscape(deploymentID)+"/payload")
	if err != nil {
		return nil, err
	}
	var items []map[string]any
	if err := unmarshalList(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetActiveTeamDeployKeysCount returns the count of active deploy keys for a team.
//
// Default team_id = ""
//
// Category: read
func (s *DeploymentsService) GetActiveTeamDeployKeysCount(ctx context.Context, teamID string) (int, error) {
	body, err := s.client.get(ctx, teamQuery("/v1/deploy-keys/active/count", teamID))
	if err != nil {
		return 0, err
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := unmarshalObject(body, &resp); err != nil {
		// Some platform builds return the bare number.
		if n, convErr := strconv.Atoi(string(body)); convErr == nil {
			return n, nil
		}
		return 0, err
	}
	return resp.Count, nil
}
