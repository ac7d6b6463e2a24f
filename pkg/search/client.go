package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds each search call.
const DefaultTimeout = 30 * time.Second

// TokenProvider supplies the bearer credential attached to each request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// Client is the HTTP client for the external search service.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewClient creates a new search service client.
func NewClient(baseURL string, tokens TokenProvider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search performs an authenticated search call and returns the raw records.
// On an authentication failure the credential is refreshed and the call is
// retried exactly once.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Record, error) {
	records, status, err := c.search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		if err := c.tokens.Invalidate(ctx); err != nil {
			return nil, fmt.Errorf("search auth failed (%d) and credential refresh failed: %w", status, err)
		}
		records, status, err = c.search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search API error: %d", status)
	}
	return records, nil
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]Record, int, error) {
	url := fmt.Sprintf("%s/search", c.baseURL)

	body, err := json.Marshal(Request{Query: query, Limit: limit})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to obtain search credential: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode search response: %w", err)
	}

	return result.Result, resp.StatusCode, nil
}
