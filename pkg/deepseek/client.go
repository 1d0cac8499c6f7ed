package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

const (
	defaultAPIURL  = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
	defaultTimeout = 30 * time.Second

	// Placeholder value shipped in .env.example; treated the same as no key.
	placeholderKey = "sk-your-api-key-here"
)

// TransportError indicates the API could not be reached or returned a
// non-OK status. Callers are expected to fall back, never to propagate it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("deepseek transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the API answered but the body could not
// be interpreted (bad JSON, empty choices, empty content).
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("deepseek malformed response: %s", e.Reason)
}

// CompletionRequest carries one chat completion call
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
	// JSONOutput requests response_format json_object so the model emits
	// a single JSON document
	JSONOutput bool
}

// Client is the DeepSeek chat-completions client
type Client struct {
	apiKey  string
	apiURL  string
	model   string
	enabled bool
	client  *http.Client
	logger  logger.Logger
}

// NewClientFromEnv creates a new client from environment variables.
// The client is always constructed; Available reports whether calls
// can actually be made.
func NewClientFromEnv(log logger.Logger) *Client {
	timeout := defaultTimeout
	if v := os.Getenv("DEEPSEEK_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	enabled := true
	if v := os.Getenv("DEEPSEEK_ENABLED"); v != "" {
		enabled, _ = strconv.ParseBool(v)
	}

	return &Client{
		apiKey:  os.Getenv("DEEPSEEK_API_KEY"),
		apiURL:  getEnv("DEEPSEEK_API_URL", defaultAPIURL),
		model:   getEnv("DEEPSEEK_MODEL", defaultModel),
		enabled: enabled,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// Available reports whether the AI capability is configured and enabled
func (c *Client) Available() bool {
	return c.enabled && c.apiKey != "" && c.apiKey != placeholderKey
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
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Model string `json:"model"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Complete sends one system+user prompt pair and returns the assistant text
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
	}
	if req.JSONOutput {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	reqJSON, err := json.Marshal(body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", &TransportError{Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("DeepSeek API call failed", "error", err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("DeepSeek API returned error status",
			"status", resp.StatusCode,
			"body", string(respBody))
		return "", &TransportError{Err: fmt.Errorf("API status %d", resp.StatusCode)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		c.logger.Error("Failed to decode DeepSeek response", "error", err, "body", string(respBody))
		return "", &MalformedResponseError{Reason: "invalid JSON body"}
	}

	if len(parsed.Choices) == 0 {
		return "", &MalformedResponseError{Reason: "no choices in response"}
	}

	content := parsed.Choices[0].Message.Content
	if content == "" {
		return "", &MalformedResponseError{Reason: "empty completion content"}
	}

	c.logger.Debug("DeepSeek completion finished",
		"model", parsed.Model,
		"prompt_tokens", parsed.Usage.PromptTokens,
		"completion_tokens", parsed.Usage.CompletionTokens)

	return content, nil
}

// getEnv returns the value of an environment variable or a default
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
