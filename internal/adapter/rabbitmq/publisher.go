package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"desk-pacing/internal/core/domain"
)

// Publisher forwards budget alerts to a durable RabbitMQ queue so operator
// tooling outside this service can consume them. The engine treats
// publishing as best effort; alerts themselves stay ephemeral.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewPublisher dials the broker and declares the alert queue. The caller
// must Close the publisher when shutting down.
func NewPublisher(addr, queue string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}
	return &Publisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

// PublishAlerts sends each alert as a persistent JSON message.
func (p *Publisher) PublishAlerts(ctx context.Context, alerts []domain.BudgetAlert) error {
	for _, a := range alerts {
		body, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal alert: %w", err)
		}
		if err = p.ch.PublishWithContext(
			ctx,
			"",      // default exchange
			p.queue, // routing key
			false,   // mandatory
			false,   // immediate
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  "application/json",
				Body:         body,
				Timestamp:    a.CreatedAt,
			},
		); err != nil {
			return fmt.Errorf("publish alert: %w", err)
		}
		p.logger.Debug("budget alert published",
			slog.String("campaign_id", a.CampaignID.String()),
			slog.String("type", string(a.Type)),
			slog.String("severity", string(a.Severity)))
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
