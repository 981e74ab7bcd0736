package xplainable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// applyHeaders sets authentication and scoping headers on an outgoing request.
func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("X-Api-Key", c.apiKey)
	if c.orgID != "" {
		req.Header.Set("X-Org-Id", c.orgID)
	}
	if c.teamID != "" {
		req.Header.Set("X-Team-Id", c.teamID)
	}
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST request with a JSON body and returns the response body.
func (c *Client) post(ctx context.Context, path string, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

// put performs a PUT request with a JSON body and returns the response body.
func (c *Client) put(ctx context.Context, path string, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, data)
}

// del performs a DELETE request and returns the response body.
func (c *Client) del(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do performs an HTTP request against the platform, decoding the standard
// error envelope on non-2xx responses.
func (c *Client) do(ctx context.Context, method, path string, data any) ([]byte, error) {
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Platform request")

	var bodyReader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.hostname+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.applyHeaders(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("Platform request failed")
		return nil, fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Platform response")

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("platform returned %d: %s", resp.StatusCode, string(body))}
	}

	return body, nil
}

// unmarshalList decodes a JSON array response into dst, translating a JSON
// null body into ErrNullResponse so callers can normalize it to empty.
func unmarshalList(body []byte, dst any) error {
	if isJSONNull(body) {
		return ErrNullResponse
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse list response: %w", err)
	}
	return nil
}

// unmarshalObject decodes a JSON object response into dst.
func unmarshalObject(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func isJSONNull(body []byte) bool {
	return string(bytes.TrimSpace(body)) == "null" || len(bytes.TrimSpace(body)) == 0
}

// teamQuery appends an optional team_id query parameter to a path.
func teamQuery(path, teamID string) string {
	if teamID == "" {
		return path
	}
	return path + "?team_id=" + url.QueryEscape(teamID)
}
