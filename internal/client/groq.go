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

const (
	groqAPIBase = "https://api.groq.com/openai/v1/chat/completions"
	groqModel   = "llama-3.1-8b-instant"
)

// GroqClient handles communication with the Groq API for intent routing
type GroqClient struct {
	httpClient  *http.Client
	apiKey      string
	rateLimiter *RateLimiter
	logger      *slog.Logger
}

// GroqRequest represents a chat completion request
type GroqRequest struct {
	Model       string        `json:"model"`
	Messages    []GroqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// GroqMessage represents a chat message
type GroqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroqResponse represents a chat completion response
type GroqResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code,omitempty"`
	} `json:"error,omitempty"`
}

// NewGroqClient creates a new Groq API client
func NewGroqClient(apiKey string, requestsPerMinute float64, logger *slog.Logger) *GroqClient {
	return &GroqClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		rateLimiter: NewRateLimiter(requestsPerMinute / 60.0),
		logger:      logger,
	}
}

// ClassifyIntent chooses the assistant tool for a user message.
func (c *GroqClient) ClassifyIntent(ctx context.Context, message string, tools []string) (Intent, error) {
	if len(tools) == 0 {
		return Intent{}, fmt.Errorf("no tools provided")
	}

	prompt := buildIntentPrompt(message, tools)
	reply, err := c.complete(ctx, prompt)
	if err != nil {
		return Intent{}, err
	}

	intent, err := parseIntentReply(reply, tools)
	if err != nil {
		return Intent{}, err
	}

	c.logger.Debug("intent classified",
		"tool", intent.Tool,
		"car", intent.CarName,
	)
	return intent, nil
}

// complete performs a single chat completion request
func (c *GroqClient) complete(ctx context.Context, prompt string) (string, error) {
	req := GroqRequest{
		Model: groqModel,
		Messages: []GroqMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.0, // Zero temperature for deterministic output
		MaxTokens:   30,  // Force short response (tool number + car name)
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", groqAPIBase, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Groq API returned non-200 status",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", fmt.Errorf("Groq API error (status %d): %s", resp.StatusCode, string(body))
	}

	var groqResp GroqResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if groqResp.Error != nil {
		return "", fmt.Errorf("Groq API error: %s", groqResp.Error.Message)
	}

	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	c.logger.Debug("Groq API request successful",
		"tokens_used", groqResp.Usage.TotalTokens,
	)

	return groqResp.Choices[0].Message.Content, nil
}

// Close closes the client
func (c *GroqClient) Close() {
	c.rateLimiter.Stop()
}
