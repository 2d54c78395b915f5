// Package order implements the core order lifecycle: building orders from
// catalog dishes, tracking status, and aggregating profit.
package order

import (
	"time"

	"comanda/internal/pkg/money"
)

// Status is an order's position in the pending -> ready -> paid lifecycle.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusPaid    Status = "paid"
)

// Statuses lists the allowed statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusReady, StatusPaid}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusPaid:
		return true
	default:
		return false
	}
}

// LineItem is one dish on an order, with the dish name and unit price joined
// in for display.
type LineItem struct {
	DishID   int64
	Name     string
	Price    money.Cents
	Quantity int
}

// Subtotal is the line's contribution to the order total.
func (li LineItem) Subtotal() money.Cents {
	return li.Price * money.Cents(li.Quantity)
}

type Order struct {
	ID          int64
	TableNumber int
	Total       money.Cents
	Status      Status
	Items       []LineItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
