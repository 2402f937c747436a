package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"dailycard/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

const (
	ActionSent   = "sent"
	ActionFailed = "failed"
)

type DeliveryMessage struct {
	Action     string    `json:"action"` // "sent" or "failed"
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	SourceName string    `json:"source_name"`
	Title      string    `json:"title"`
	Recipients int       `json:"recipients"`
	Translated bool      `json:"translated"`
	Generated  bool      `json:"generated"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewDeliveryMessage converts a run report into the published envelope.
func NewDeliveryMessage(report *domain.RunReport) DeliveryMessage {
	msg := DeliveryMessage{
		Action:     ActionSent,
		RunID:      report.RunID,
		Source:     string(report.Source),
		SourceName: report.SourceName,
		Title:      report.Title,
		Recipients: report.Recipients,
		Translated: report.Translated,
		Generated:  report.Generated,
		Timestamp:  time.Now().UTC(),
	}
	if !report.Sent {
		msg.Action = ActionFailed
		if report.SendErr != nil {
			msg.Error = report.SendErr.Error()
		}
	}
	return msg
}

func (r *RabbitMQ) Announce(ctx context.Context, report *domain.RunReport) error {
	msg := NewDeliveryMessage(report)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    report.RunID,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("announced delivery",
		"run_id", report.RunID,
		"action", msg.Action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
