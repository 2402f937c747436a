package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender submits mail over an authenticated SMTP session. Port 465
// uses implicit TLS.
type SMTPSender struct {
	dialer *gomail.Dialer
	logger *slog.Logger
}

func NewSMTP(cfg SMTPConfig, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger.With("component", "mailer", "host", cfg.Host, "port", cfg.Port),
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Info("sending email", "recipients", len(msg.To))

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", append([]string(nil), msg.To...)...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return m
}
