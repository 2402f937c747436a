package mailer

import (
	"context"
	"log/slog"
)

// LogSender logs emails instead of sending them.
type LogSender struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "mailer")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("dry run, email not sent",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return nil
}
