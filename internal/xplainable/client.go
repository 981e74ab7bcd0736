// Package xplainable is a Go client for the Xplainable analytics platform
// API. It mirrors the service layout of the upstream python client: one
// sub-service per API area, each method mapping to a single endpoint.
//
// Exported service methods carry structured doc comments that the sync
// pipeline introspects: the first line is the tool description, optional
// "Default name = literal" lines declare optional parameters, and a
// "Category:" line marks read/write/admin behaviour.
package xplainable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

// Version is the client version baked into this build. The sync pipeline
// compares it against the platform-reported API version.
const Version = "1.3.2"

// Session holds identity details populated by Connect.
type Session struct {
	Username      string `json:"username"`
	Hostname      string `json:"hostname"`
	APIKeyExpires string `json:"api_key_expires,omitempty"`
}

// Client is the entry point to the platform API. All calls go through the
// sub-services; the zero value is not usable, construct with NewClient.
type Client struct {
	hostname   string
	apiKey     string
	orgID      string
	teamID     string
	httpClient *http.Client
	logger     *common.Logger

	Session Session

	Models        *ModelsService
	Deployments   *DeploymentsService
	Preprocessing *PreprocessingService
	Collections   *CollectionsService
	Datasets      *DatasetsService
	Inference     *InferenceService
	GPT           *GPTService
	Autotrain     *AutotrainService
	Misc          *MiscService
}

// NewClient creates a platform client. The API key is required; hostname
// defaults to the production platform URL when empty.
func NewClient(apiKey, hostname, orgID, teamID string, logger *common.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("xplainable: api key is required")
	}
	if hostname == "" {
		hostname = common.DefaultHostname
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	c := &Client{
		hostname: hostname,
		apiKey:   apiKey,
		orgID:    orgID,
		teamID:   teamID,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
		logger: logger,
	}
	c.Models = &ModelsService{client: c}
	c.Deployments = &DeploymentsService{client: c}
	c.Preprocessing = &PreprocessingService{client: c}
	c.Collections = &CollectionsService{client: c}
	c.Datasets = &DatasetsService{client: c}
	c.Inference = &InferenceService{client: c}
	c.GPT = &GPTService{client: c}
	c.Autotrain = &AutotrainService{client: c}
	c.Misc = &MiscService{client: c}
	return c, nil
}

// Connect verifies the API key against the platform and populates Session.
func (c *Client) Connect(ctx context.Context) error {
	body, err := c.get(ctx, "/v1/session")
	if err != nil {
		return fmt.Errorf("failed to establish session: %w", err)
	}
	if err := json.Unmarshal(body, &c.Session); err != nil {
		return fmt.Errorf("failed to parse session response: %w", err)
	}
	if c.Session.Hostname == "" {
		c.Session.Hostname = c.hostname
	}
	return nil
}

// ConnectionInfo returns connection details suitable for diagnostics.
// It never includes the API key itself.
func (c *Client) ConnectionInfo() map[string]any {
	return map[string]any{
		"hostname":        c.hostname,
		"username":        c.Session.Username,
		"api_key_expires": c.Session.APIKeyExpires,
		"client_version":  Version,
		"org_id":          c.orgID,
		"team_id":         c.teamID,
	}
}

// Hostname returns the configured platform URL.
func (c *Client) Hostname() string { return c.hostname }
