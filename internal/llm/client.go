// Package llm is a minimal client for OpenAI-compatible chat-completions
// endpoints (OpenAI, Ollama, LM Studio, vLLM).
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("llm: generation is not configured")

// UpstreamError reports a failed or unusable completion so callers can tell
// it apart from local errors.
type UpstreamError struct {
	Reason  string
	Status  int
	Wrapped error
}

func (e *UpstreamError) Error() string {
	msg := "llm upstream: " + e.Reason
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Wrapped
}

// Client calls POST <baseURL>/chat/completions.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a Client. An empty apiKey yields a client whose calls
// fail with ErrNotConfigured.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// IsAvailable reports whether the client has credentials.
func (c *Client) IsAvailable() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CompleteJSON sends a system and user prompt, asks for a JSON object and
// decodes the first choice into out.
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) error {
	if !c.IsAvailable() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    c.temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Reason: "read response", Wrapped: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Reason: truncate(string(raw), 300), Status: resp.StatusCode}
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return &UpstreamError{Reason: "parse response", Wrapped: err}
	}
	if chat.Error != nil {
		return &UpstreamError{Reason: chat.Error.Message}
	}
	if len(chat.Choices) == 0 {
		return &UpstreamError{Reason: "empty response"}
	}

	content := cleanJSONContent(chat.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &UpstreamError{Reason: "invalid JSON content", Wrapped: err}
	}
	return nil
}

// cleanJSONContent strips markdown code fences some models wrap JSON in.
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
