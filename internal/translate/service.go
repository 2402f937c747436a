// Package translate turns a record's title and description into the
// configured target language.
package translate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"dailycard/internal/domain"
)

// Backend translates a single text.
type Backend interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Service applies the input cap and the untranslated fallback around a
// Backend.
type Service struct {
	backend  Backend
	target   string
	maxChars int
	logger   *slog.Logger
}

func NewService(backend Backend, target language.Tag, maxChars int, logger *slog.Logger) *Service {
	base, _ := target.Base()
	return &Service{
		backend:  backend,
		target:   base.String(),
		maxChars: maxChars,
		logger:   logger.With("component", "translate", "target", base.String()),
	}
}

// Translate translates title and the capped explanation. If either call
// fails both fields keep their original text.
func (s *Service) Translate(ctx context.Context, title, explanation string) domain.Translation {
	explanation = Truncate(explanation, s.maxChars)
	original := domain.Translation{Title: title, Explanation: explanation}

	s.logger.Info("translating texts")

	translatedTitle, err := s.translate(ctx, title)
	if err != nil {
		return s.fallback(original, fmt.Errorf("translate title: %w", err))
	}

	translatedExplanation, err := s.translate(ctx, explanation)
	if err != nil {
		return s.fallback(original, fmt.Errorf("translate explanation: %w", err))
	}

	return domain.Translation{
		Title:       translatedTitle,
		Explanation: translatedExplanation,
		Translated:  true,
	}
}

func (s *Service) translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}
	return s.backend.Translate(ctx, text, s.target)
}

func (s *Service) fallback(original domain.Translation, err error) domain.Translation {
	s.logger.Warn("translation failed, keeping original text", "error", err)
	original.Err = err
	return original
}

// Truncate caps text at max characters (runes). max <= 0 disables the cap.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
