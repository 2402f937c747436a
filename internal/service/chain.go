package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dailycard/internal/domain"
)

// FallbackChain tries each source once, in order, and returns the first
// valid record.
type FallbackChain struct {
	sources []ContentSource
	logger  *slog.Logger
}

func NewFallbackChain(logger *slog.Logger, sources ...ContentSource) *FallbackChain {
	return &FallbackChain{
		sources: sources,
		logger:  logger,
	}
}

// Acquire returns the record and the source that produced it. When every
// source fails the error wraps domain.ErrAllSourcesFailed and each cause.
func (c *FallbackChain) Acquire(ctx context.Context) (domain.Content, ContentSource, error) {
	causes := make([]error, 0, len(c.sources))

	for i, src := range c.sources {
		if i > 0 {
			c.logger.Warn("falling back to next source", "source", src.ID())
		}

		content, err := src.Fetch(ctx)
		if err == nil {
			err = content.Validate()
		}
		if err == nil {
			c.logger.Info("content acquired",
				"source", src.ID(),
				"kind", content.Source,
				"video", content.IsVideo(),
			)
			return content, src, nil
		}

		c.logger.Warn("source failed", "source", src.ID(), "error", err)
		causes = append(causes, fmt.Errorf("%s: %w", src.ID(), err))
	}

	return domain.Content{}, nil, fmt.Errorf("%w: %w", domain.ErrAllSourcesFailed, errors.Join(causes...))
}
