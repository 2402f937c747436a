package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dailycard/internal/domain"
	"dailycard/internal/mailer"
)

type DigestConfig struct {
	From          string
	Recipients    []string
	RecipientName string
	SenderName    string
	Now           func() time.Time
}

// DigestService runs one acquire, translate, compose, render and send pass.
type DigestService struct {
	chain      *FallbackChain
	translator Translator
	composer   Composer
	renderer   Renderer
	sender     Sender
	announcer  Announcer
	logger     *slog.Logger
	config     DigestConfig
}

func NewDigestService(
	chain *FallbackChain,
	translator Translator,
	composer Composer,
	renderer Renderer,
	sender Sender,
	announcer Announcer,
	logger *slog.Logger,
	cfg DigestConfig,
) *DigestService {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &DigestService{
		chain:      chain,
		translator: translator,
		composer:   composer,
		renderer:   renderer,
		sender:     sender,
		announcer:  announcer,
		logger:     logger,
		config:     cfg,
	}
}

// Run returns an error only when no content could be acquired or the card
// could not be rendered. A failed send is reported in the RunReport.
func (s *DigestService) Run(ctx context.Context) (*domain.RunReport, error) {
	startTime := time.Now()
	report := &domain.RunReport{
		RunID:      uuid.NewString(),
		Recipients: len(s.config.Recipients),
	}
	logger := s.logger.With("run_id", report.RunID)

	logger.Info("starting daily card")

	content, src, err := s.chain.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire content: %w", err)
	}
	report.Source = content.Source
	report.SourceName = src.Name()

	translation := s.translator.Translate(ctx, content.Title, content.Explanation)
	report.Translated = translation.Translated
	report.Title = translation.Title

	message := s.composer.Compose(ctx, content, translation.Explanation)
	report.Generated = message.Generated

	logger.Info("rendering card")
	html, err := s.renderer.Render(domain.Card{
		Content:       content,
		Translation:   translation,
		Message:       message,
		RecipientName: s.config.RecipientName,
		SenderName:    s.config.SenderName,
		Date:          s.config.Now(),
	})
	if err != nil {
		return report, fmt.Errorf("render card: %w", err)
	}

	theme := content.Theme
	if theme == (domain.Theme{}) {
		theme = domain.ThemeFor(content.Source)
	}

	err = s.sender.Send(ctx, mailer.Message{
		From:    s.config.From,
		To:      s.config.Recipients,
		Subject: mailer.Subject(theme, s.config.RecipientName, translation.Title),
		HTML:    html,
	})
	if err != nil {
		logger.Error("failed to send email", "error", err)
		report.SendErr = err
	} else {
		report.Sent = true
		logger.Info("email sent", "recipients", report.Recipients)
	}

	if s.announcer != nil {
		if err := s.announcer.Announce(ctx, report); err != nil {
			logger.Warn("failed to announce delivery", "error", err)
		}
	}

	report.Duration = time.Since(startTime)

	logger.Info("daily card finished",
		"source", report.Source,
		"translated", report.Translated,
		"generated", report.Generated,
		"sent", report.Sent,
		"duration", report.Duration,
	)

	return report, nil
}
