// Package events publishes adoption events to a RabbitMQ topic exchange.
package events

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"pet-adoption/internal/pkg/config"

	"github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// Open falls back to a no-op publisher when AMQP_URL is empty or the broker
// cannot be reached, so the web process never depends on the broker.
func Open(cfg config.EventsConfig) Publisher {
	if strings.TrimSpace(cfg.AMQPURL) == "" {
		slog.Info("event publishing disabled: AMQP_URL not set")
		return NopPublisher{}
	}
	p, err := NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange)
	if err != nil {
		slog.Warn("event publishing disabled: broker unavailable", "error", err.Error())
		return NopPublisher{}
	}
	return p
}

type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	return p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		})
}

func (p *AMQPPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

// NopPublisher drops events; the relay still marks them delivered.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, routingKey string, _ []byte) error {
	slog.Debug("event dropped: no broker configured", "routing_key", routingKey)
	return nil
}

func (NopPublisher) Close() error { return nil }
