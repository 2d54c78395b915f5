// Package events publishes order lifecycle events so downstream consumers
// (kitchen displays, analytics) can react without polling the database.
package events

import (
	"context"
	"time"

	"comanda/internal/pkg/money"
)

const (
	RouteOrderCreated       = "order.created"
	RouteOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the JSON body published for every order lifecycle change.
type OrderEvent struct {
	OrderID     int64       `json:"order_id"`
	TableNumber int         `json:"table_number"`
	Status      string      `json:"status"`
	TotalCents  money.Cents `json:"total_cents"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// Publisher emits order events. Implementations must never block request
// handling beyond their configured timeout.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event OrderEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = (*NoopPublisher)(nil)

func (*NoopPublisher) Publish(context.Context, string, OrderEvent) error { return nil }

func (*NoopPublisher) Close() error { return nil }
