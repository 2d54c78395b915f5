// Package dish manages the catalog of dishes staff can add to an order.
package dish

import (
	"time"

	"comanda/internal/pkg/money"
)

type Dish struct {
	ID        int64
	Name      string
	Price     money.Cents
	CreatedAt time.Time
	UpdatedAt time.Time
}
