// Package genai provides the text-generation backends used for the
// personalised poem.
package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Generator turns a prompt into free text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

var ErrEmptyResponse = errors.New("empty response")

// Config selects and configures a backend.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New returns the configured backend, or nil when no API key is set.
func New(cfg Config, logger *slog.Logger) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case "", "openai":
		return NewOpenAI(OpenAIConfig{
			APIKey:  cfg.APIKey,
			APIBase: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
			Logger:  logger,
		}), nil
	case "anthropic":
		return NewAnthropic(AnthropicConfig{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
			Logger:  logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
