// Package mailer delivers the rendered card.
package mailer

import (
	"context"
	"fmt"

	"dailycard/internal/domain"
)

// Message represents an email message to be sent.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender is the interface for mail transports.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Subject builds "<emoji> <recipient>: <title>".
func Subject(theme domain.Theme, recipientName, title string) string {
	return fmt.Sprintf("%s %s: %s", theme.Emoji, recipientName, title)
}
