package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"comanda/internal/config"

	"github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes order events to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	url      string
	exchange string
	timeout  time.Duration
	conn     *amqp091.Connection
	channel  *amqp091.Channel
}

var _ Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher connects to the broker at url and declares the configured
// topic exchange.
func NewAMQPPublisher(url string, cfg *config.Events) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:      url,
		exchange: cfg.Exchange,
		timeout:  cfg.PublishTimeout.Duration,
	}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	slog.Info("Connected to the message broker.", "exchange", p.exchange)
	return p, nil
}

func (p *AMQPPublisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// Publish sends the event as a persistent JSON message under the given
// routing key, reconnecting once if the connection has dropped.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect to broker: %w", err)
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
	}

	if err := p.channel.PublishWithContext(publishCtx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish to exchange %s with key %s: %w", p.exchange, routingKey, err)
	}

	slog.Debug("Event published.", "exchange", p.exchange, "routing_key", routingKey, "order_id", event.OrderID)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}

	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}

	return nil
}
