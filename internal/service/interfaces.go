package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"dailycard/internal/domain"
	"dailycard/internal/mailer"
)

type ContentSource interface {
	ID() string
	Name() string
	Fetch(ctx context.Context) (domain.Content, error)
}

type Translator interface {
	Translate(ctx context.Context, title, explanation string) domain.Translation
}

type Composer interface {
	Compose(ctx context.Context, content domain.Content, explanation string) domain.Message
}

type Renderer interface {
	Render(card domain.Card) (string, error)
}

type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type Announcer interface {
	Announce(ctx context.Context, report *domain.RunReport) error
	Close() error
}
