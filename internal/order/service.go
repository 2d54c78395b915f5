package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"comanda/internal/dish"
	"comanda/internal/pkg/money"
	"comanda/internal/platform/db"
	"comanda/internal/platform/events"
)

var (
	ErrInvalidDish   = errors.New("order: unknown dish id")
	ErrInvalidStatus = errors.New("order: status not allowed")
	ErrNoDishes      = errors.New("order: at least one dish is required")
)

// OrderRepository is the storage contract for orders and their line items.
type OrderRepository interface {
	Insert(ctx context.Context, tableNumber int, total money.Cents) (Order, error)
	InsertLines(ctx context.Context, orderID int64, lines []LineParams) error
	DeleteLines(ctx context.Context, orderID int64) error
	UpdateTotal(ctx context.Context, orderID int64, total money.Cents) error
	Find(ctx context.Context, orderID int64) (Order, error)
	List(ctx context.Context, filters Filters) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error)
	Delete(ctx context.Context, orderID int64) (int64, error)
	PaidTotal(ctx context.Context) (money.Cents, error)
}

// DishCatalog is the slice of the dish service the order builder needs.
type DishCatalog interface {
	ListByIDs(ctx context.Context, ids []int64) ([]dish.Dish, error)
}

type CreateParams struct {
	TableNumber int
	Lines       []LineParams
}

type service struct {
	repo      OrderRepository
	catalog   DishCatalog
	txManager db.TxManager
	publisher events.Publisher
}

func NewService(repo OrderRepository, catalog DishCatalog, txManager db.TxManager, publisher events.Publisher) *service {
	return &service{
		repo:      repo,
		catalog:   catalog,
		txManager: txManager,
		publisher: publisher,
	}
}

var _ Service = (*service)(nil)

// Create builds an order from catalog dishes. The order row and all line
// items are written in a single transaction; an unknown dish id rolls the
// whole order back.
func (s *service) Create(ctx context.Context, params CreateParams) (Order, error) {
	lines, err := normalizeLines(params.Lines)
	if err != nil {
		return Order{}, err
	}

	var created Order
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		priced, total, err := s.priceLines(txCtx, lines)
		if err != nil {
			return err
		}

		o, err := s.repo.Insert(txCtx, params.TableNumber, total)
		if err != nil {
			return err
		}

		if err := s.repo.InsertLines(txCtx, o.ID, lines); err != nil {
			return err
		}

		o.Items = priced
		created = o
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	s.publish(ctx, events.RouteOrderCreated, created)
	return created, nil
}

func (s *service) Find(ctx context.Context, orderID int64) (Order, error) {
	return s.repo.Find(ctx, orderID)
}

func (s *service) List(ctx context.Context, filters Filters) ([]Order, error) {
	return s.repo.List(ctx, filters)
}

// UpdateStatus moves the order to a new lifecycle status after validating it
// against the allowed set.
func (s *service) UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return Order{}, err
	}

	s.publish(ctx, events.RouteOrderStatusChanged, updated)
	return updated, nil
}

// ReplaceDishes swaps the order's line items for a new set and recomputes the
// total, all in one transaction so a failed validation leaves the previous
// lines untouched.
func (s *service) ReplaceDishes(ctx context.Context, orderID int64, lineParams []LineParams) (Order, error) {
	lines, err := normalizeLines(lineParams)
	if err != nil {
		return Order{}, err
	}

	var updated Order
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := s.repo.Find(txCtx, orderID)
		if err != nil {
			return err
		}

		priced, total, err := s.priceLines(txCtx, lines)
		if err != nil {
			return err
		}

		if err := s.repo.DeleteLines(txCtx, o.ID); err != nil {
			return err
		}

		if err := s.repo.InsertLines(txCtx, o.ID, lines); err != nil {
			return err
		}

		if err := s.repo.UpdateTotal(txCtx, o.ID, total); err != nil {
			return err
		}

		o.Items = priced
		o.Total = total
		updated = o
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	return updated, nil
}

// Remove deletes the order and reports how many orders were removed.
func (s *service) Remove(ctx context.Context, orderID int64) (int64, error) {
	deleted, err := s.repo.Delete(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNotFound
	}
	return deleted, nil
}

// TotalProfit sums the totals of all paid orders.
func (s *service) TotalProfit(ctx context.Context) (money.Cents, error) {
	return s.repo.PaidTotal(ctx)
}

// normalizeLines drops the caller's duplicates by merging quantities and
// applies the default quantity of 1.
func normalizeLines(lineParams []LineParams) ([]LineParams, error) {
	if len(lineParams) == 0 {
		return nil, ErrNoDishes
	}

	quantities := make(map[int64]int, len(lineParams))
	var ids []int64
	for _, lp := range lineParams {
		if lp.Quantity < 0 {
			return nil, fmt.Errorf("%w: dish %d has negative quantity %d", ErrInvalidDish, lp.DishID, lp.Quantity)
		}
		qty := lp.Quantity
		if qty == 0 {
			qty = 1
		}
		if _, seen := quantities[lp.DishID]; !seen {
			ids = append(ids, lp.DishID)
		}
		quantities[lp.DishID] += qty
	}

	lines := make([]LineParams, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, LineParams{DishID: id, Quantity: quantities[id]})
	}
	return lines, nil
}

// priceLines resolves the lines against the catalog and computes the order
// total. Every dish id must exist.
func (s *service) priceLines(ctx context.Context, lines []LineParams) ([]LineItem, money.Cents, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.DishID)
	}

	dishes, err := s.catalog.ListByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	byID := make(map[int64]dish.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	items := make([]LineItem, 0, len(lines))
	var total money.Cents
	for _, line := range lines {
		d, ok := byID[line.DishID]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %d", ErrInvalidDish, line.DishID)
		}
		item := LineItem{
			DishID:   d.ID,
			Name:     d.Name,
			Price:    d.Price,
			Quantity: line.Quantity,
		}
		items = append(items, item)
		total += item.Subtotal()
	}

	return items, total, nil
}

// publish emits an order event. Failures are logged and never surface to the
// request: the order is already committed.
func (s *service) publish(ctx context.Context, routingKey string, o Order) {
	event := events.OrderEvent{
		OrderID:     o.ID,
		TableNumber: o.TableNumber,
		Status:      string(o.Status),
		TotalCents:  o.Total,
		OccurredAt:  time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		slog.Warn("failed to publish order event", "routing_key", routingKey, "order_id", o.ID, "reason", err)
	}
}
