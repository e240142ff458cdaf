package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const tavilyAPIBase = "https://api.tavily.com/search"

// SearchResult is a single web search hit. Only the first result's content
// is consumed by the pricing logic.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchResponse is the Tavily search API response.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Images  []string       `json:"images"`
}

// tavilyRequest is the search request payload.
type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth,omitempty"`
	IncludeImages bool   `json:"include_images"`
	MaxResults    int    `json:"max_results,omitempty"`
}

// TavilyClient handles communication with the Tavily search API
type TavilyClient struct {
	httpClient  *http.Client
	apiKey      string
	rateLimiter *RateLimiter
	retryConfig RetryConfig
	logger      *slog.Logger
}

// RetryConfig defines retry behavior
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// NewTavilyClient creates a new Tavily API client
func NewTavilyClient(apiKey string, rateLimit float64, logger *slog.Logger) *TavilyClient {
	return &TavilyClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		rateLimiter: NewRateLimiter(rateLimit),
		retryConfig: RetryConfig{
			MaxRetries:     3,
			InitialBackoff: 1 * time.Second,
			MaxBackoff:     10 * time.Second,
			Multiplier:     2.0,
		},
		logger: logger,
	}
}

// Search performs a web search, optionally including image results.
func (c *TavilyClient) Search(ctx context.Context, query string, includeImages bool) (*SearchResponse, error) {
	payload := tavilyRequest{
		APIKey:        c.apiKey,
		Query:         query,
		SearchDepth:   "basic",
		IncludeImages: includeImages,
		MaxResults:    5,
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	body, err := c.postWithRetry(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	c.logger.Debug("search completed",
		"query", query,
		"results", len(resp.Results),
		"images", len(resp.Images),
	)

	return &resp, nil
}

// postWithRetry performs the HTTP request with retry logic
func (c *TavilyClient) postWithRetry(ctx context.Context, reqBody []byte) ([]byte, error) {
	backoff := c.retryConfig.InitialBackoff

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, "POST", tavilyAPIBase, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if attempt < c.retryConfig.MaxRetries {
				time.Sleep(backoff)
				backoff = min(time.Duration(float64(backoff)*c.retryConfig.Multiplier), c.retryConfig.MaxBackoff)
				continue
			}
			return nil, fmt.Errorf("search request failed after %d attempts: %w", attempt+1, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read search response: %w", err)
		}

		// Success
		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		// Retry on 429, 500, 502, 503
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			c.logger.Warn("search request retrying",
				"status", resp.StatusCode,
				"attempt", attempt+1,
			)
			if attempt < c.retryConfig.MaxRetries {
				time.Sleep(backoff)
				backoff = min(time.Duration(float64(backoff)*c.retryConfig.Multiplier), c.retryConfig.MaxBackoff)
				continue
			}
		}

		// Non-retryable error
		return nil, fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil, fmt.Errorf("max retries exceeded")
}

// Close closes the client
func (c *TavilyClient) Close() {
	c.rateLimiter.Stop()
}
