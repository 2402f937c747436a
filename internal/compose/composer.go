// Package compose writes the personal note that opens the card.
package compose

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"dailycard/internal/domain"
)

var ErrGenerationDisabled = errors.New("text generation disabled")

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Composer asks a Generator for a short poem and falls back to the
// source's default message.
type Composer struct {
	generator Generator
	language  string
	logger    *slog.Logger
}

// New creates a Composer. A nil generator always yields the default message.
func New(generator Generator, target language.Tag, logger *slog.Logger) *Composer {
	return &Composer{
		generator: generator,
		language:  display.English.Languages().Name(target),
		logger:    logger.With("component", "compose"),
	}
}

// Compose returns the generated poem, or the default message for the
// record's source when generation is disabled, fails or returns nothing.
func (c *Composer) Compose(ctx context.Context, content domain.Content, explanation string) domain.Message {
	fallback := domain.Message{Text: domain.ThemeFor(content.Source).DefaultMessage}

	if c.generator == nil {
		fallback.Err = ErrGenerationDisabled
		return fallback
	}

	c.logger.Info("composing poem")

	text, err := c.generator.Generate(ctx, Prompt(c.language, explanation))
	if err != nil {
		c.logger.Warn("poem generation failed, using default message", "error", err)
		fallback.Err = fmt.Errorf("generate: %w", err)
		return fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.logger.Warn("poem generation returned nothing, using default message")
		fallback.Err = errors.New("generate: empty response")
		return fallback
	}

	return domain.Message{Text: text, Generated: true}
}

// Prompt builds the poem instruction for the given language name.
func Prompt(languageName, explanation string) string {
	return fmt.Sprintf(
		"Write a short romantic poem of exactly 3 lines in %s, addressed to the person I love. "+
			"Take inspiration from this description of today's picture:\n\n%s\n\n"+
			"Reply with the 3 lines only, no title, no quotes, no explanation.",
		languageName, strings.TrimSpace(explanation),
	)
}
