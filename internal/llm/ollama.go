package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaClient implementa Client contra el endpoint /api/chat de un servidor Ollama local.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

func NewOllamaClient(baseURL, model string, httpClient *http.Client, logger *zap.Logger) *OllamaClient {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  httpClient,
		logger:  logger,
	}
}

func (c *OllamaClient) Generate(ctx context.Context, req Request) (string, error) {
	model := pickModel(req.Model, c.model)
	body := ollamaChatRequest{
		Model:    model,
		Messages: []ollamaMessage{{Role: "user", Content: req.Prompt}},
		Stream:   false,
		Options:  ollamaOptions{Temperature: req.Temperature},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("ollama error status",
			zap.Int("status", resp.StatusCode),
			zap.String("model", model),
			zap.ByteString("body", respBody),
		)
		return "", fmt.Errorf("ollama http error: status=%d", resp.StatusCode)
	}

	var cr ollamaChatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if cr.Error != "" {
		return "", fmt.Errorf("ollama api error: %s", cr.Error)
	}
	if cr.Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return cr.Message.Content, nil
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Error   string        `json:"error,omitempty"`
}
