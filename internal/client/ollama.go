package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultOllamaModel = "llama3.1:8b"

// OllamaClient handles communication with a local Ollama API for intent
// routing. It is the offline alternative to GroqClient.
type OllamaClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *slog.Logger
}

// OllamaChatRequest represents an Ollama chat API request
type OllamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []OllamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  OllamaOptions   `json:"options,omitempty"`
}

// OllamaMessage represents a chat message
type OllamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OllamaOptions represents generation options
type OllamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// OllamaChatResponse represents an Ollama chat API response
type OllamaChatResponse struct {
	Model     string        `json:"model"`
	CreatedAt string        `json:"created_at"`
	Message   OllamaMessage `json:"message"`
	Done      bool          `json:"done"`
	Error     string        `json:"error,omitempty"`
}

// NewOllamaClient creates a new Ollama API client
func NewOllamaClient(baseURL string, model string, logger *slog.Logger) *OllamaClient {
	if model == "" {
		model = defaultOllamaModel
	}

	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimRight(baseURL, "/")

	client := &OllamaClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // Longer timeout for local inference
		},
		baseURL: baseURL,
		model:   model,
		logger:  logger,
	}

	logger.Info("Ollama client initialized",
		"base_url", baseURL,
		"model", model,
	)

	return client
}

// ClassifyIntent chooses the assistant tool for a user message.
func (c *OllamaClient) ClassifyIntent(ctx context.Context, message string, tools []string) (Intent, error) {
	if len(tools) == 0 {
		return Intent{}, fmt.Errorf("no tools provided")
	}

	prompt := buildIntentPrompt(message, tools)
	reply, err := c.doRequest(ctx, prompt)
	if err != nil {
		return Intent{}, err
	}

	return parseIntentReply(reply, tools)
}

// doRequest performs a single non-streaming chat request
func (c *OllamaClient) doRequest(ctx context.Context, prompt string) (string, error) {
	req := OllamaChatRequest{
		Model: c.model,
		Messages: []OllamaMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
		Options: OllamaOptions{
			Temperature: 0.0,
			NumPredict:  30,
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/chat", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

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
		return "", fmt.Errorf("Ollama API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp OllamaChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != "" {
		return "", fmt.Errorf("Ollama API error: %s", chatResp.Error)
	}

	return chatResp.Message.Content, nil
}
