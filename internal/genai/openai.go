package genai

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

const (
	// Gemini's OpenAI-compatible endpoint.
	defaultOpenAIBase  = "https://generativelanguage.googleapis.com/v1beta/openai"
	defaultOpenAIModel = "gemini-2.0-flash"
	defaultMaxTokens   = 300
)

// OpenAI talks to any OpenAI-compatible chat completions API.
type OpenAI struct {
	apiKey  string
	apiBase string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

type OpenAIConfig struct {
	APIKey  string
	APIBase string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultOpenAIBase
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	return &OpenAI{
		apiKey:  cfg.APIKey,
		apiBase: strings.TrimRight(cfg.APIBase, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger,
	}
}

func (o *OpenAI) Name() string { return "openai" }

type oaiRequest struct {
	Model     string       `json:"model"`
	Messages  []oaiMessage `json:"messages"`
	MaxTokens int          `json:"max_tokens,omitempty"`
	Stream    bool         `json:"stream"`
}

type oaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaiResponse struct {
	Choices []oaiChoice `json:"choices"`
}

type oaiChoice struct {
	Message      oaiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	body := oaiRequest{
		Model:     o.model,
		Messages:  []oaiMessage{{Role: "user", Content: prompt}},
		MaxTokens: defaultMaxTokens,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiBase+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("openai %d: %s", resp.StatusCode, string(respBody))
	}

	var oaiResp oaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&oaiResp); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	if len(oaiResp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(oaiResp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	if o.logger != nil {
		o.logger.Debug("generated text", "model", o.model, "finish_reason", oaiResp.Choices[0].FinishReason)
	}

	return text, nil
}
