package gds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Session is the provider credential pair obtained at login/search time.
// It is threaded through every provider call as an opaque credential.
type Session struct {
	TokenID string `json:"token_id"`
	TraceID string `json:"trace_id"`
}

// Valid reports whether both credentials are present
func (s Session) Valid() bool {
	return s.TokenID != "" && s.TraceID != ""
}

// Config holds provider endpoint configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the upstream GDS over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a provider client
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// post sends a JSON request and returns the raw response body. Provider
// responses are kept raw at call sites for audit and error display.
func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return raw, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return raw, nil
}
