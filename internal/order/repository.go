package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"comanda/internal/pkg/money"
	"comanda/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("order repository: order not found")
	ErrQueryFailed = errors.New("order repository: query failed")
)

type Repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

// Filters narrows List results. Zero values mean the filter is not applied.
type Filters struct {
	ID          int64
	TableNumber int
	Status      Status
}

// LineParams is a dish reference with the quantity resolved by the service.
type LineParams struct {
	DishID   int64
	Quantity int
}

const queryOrderInsert = `
INSERT INTO orders (table_number, total_cents)
VALUES ($1, $2)
RETURNING id, table_number, total_cents, status, created_at, updated_at
`

func (r *Repository) Insert(ctx context.Context, tableNumber int, total money.Cents) (Order, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryOrderInsert, tableNumber, total)
	var o Order
	if err := scanOrder(row, &o); err != nil {
		return o, fmt.Errorf("%w: insert order for table %d: %v", ErrQueryFailed, tableNumber, err)
	}
	return o, nil
}

const queryLineInsert = `
INSERT INTO order_dishes (order_id, dish_id, quantity)
VALUES ($1, $2, $3)
`

func (r *Repository) InsertLines(ctx context.Context, orderID int64, lines []LineParams) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	for _, line := range lines {
		if _, err := exec.ExecContext(ctx, queryLineInsert, orderID, line.DishID, line.Quantity); err != nil {
			return fmt.Errorf("%w: insert line for order %d dish %d: %v", ErrQueryFailed, orderID, line.DishID, err)
		}
	}
	return nil
}

const queryLinesDelete = "DELETE FROM order_dishes WHERE order_id = $1"

func (r *Repository) DeleteLines(ctx context.Context, orderID int64) error {
	if _, err := db.ExecutorFromContext(ctx, r.db).ExecContext(ctx, queryLinesDelete, orderID); err != nil {
		return fmt.Errorf("%w: delete lines for order %d: %v", ErrQueryFailed, orderID, err)
	}
	return nil
}

const queryOrderUpdateTotal = `
UPDATE orders SET total_cents = $2, updated_at = now()
WHERE id = $1
`

func (r *Repository) UpdateTotal(ctx context.Context, orderID int64, total money.Cents) error {
	res, err := db.ExecutorFromContext(ctx, r.db).ExecContext(ctx, queryOrderUpdateTotal, orderID, total)
	if err != nil {
		return fmt.Errorf("%w: update total for order %d: %v", ErrQueryFailed, orderID, err)
	}
	return checkAffected(res, orderID)
}

const queryOrderFind = `
SELECT id, table_number, total_cents, status, created_at, updated_at FROM orders
WHERE id = $1
`

// Find returns the order with its line items attached.
func (r *Repository) Find(ctx context.Context, orderID int64) (Order, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryOrderFind, orderID)
	var o Order
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return o, ErrNotFound
		}
		return o, fmt.Errorf("%w: find order with id %d: %v", ErrQueryFailed, orderID, err)
	}

	lines, err := r.linesByOrderIDs(ctx, []int64{o.ID})
	if err != nil {
		return o, err
	}
	o.Items = lines[o.ID]

	return o, nil
}

// List returns the orders matching filters, newest first, each with its line
// items attached. Line items for the whole page come from one batched query
// instead of one query per order.
func (r *Repository) List(ctx context.Context, filters Filters) ([]Order, error) {
	query, args := buildListQuery(filters)

	rows, err := db.ExecutorFromContext(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var orders []Order
	var ids []int64
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("order repository: scan row: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order repository: iterate over order rows: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.linesByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = lines[orders[i].ID]
	}

	return orders, nil
}

func buildListQuery(filters Filters) (query string, args []any) {
	var sb strings.Builder
	sb.WriteString("SELECT id, table_number, total_cents, status, created_at, updated_at FROM orders")

	var conds []string
	if filters.ID != 0 {
		args = append(args, filters.ID)
		conds = append(conds, "id = $"+strconv.Itoa(len(args)))
	}
	if filters.TableNumber != 0 {
		args = append(args, filters.TableNumber)
		conds = append(conds, "table_number = $"+strconv.Itoa(len(args)))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY id DESC")

	return sb.String(), args
}

const queryLinesByOrders = `
SELECT od.order_id, od.dish_id, d.name, d.price_cents, od.quantity
FROM order_dishes od
JOIN dishes d ON d.id = od.dish_id
WHERE od.order_id = ANY($1)
ORDER BY od.id
`

func (r *Repository) linesByOrderIDs(ctx context.Context, orderIDs []int64) (map[int64][]LineItem, error) {
	rows, err := db.ExecutorFromContext(ctx, r.db).QueryContext(ctx, queryLinesByOrders, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: list lines for orders %v: %v", ErrQueryFailed, orderIDs, err)
	}
	defer rows.Close()

	lines := make(map[int64][]LineItem)
	for rows.Next() {
		var orderID int64
		var li LineItem
		if err := rows.Scan(&orderID, &li.DishID, &li.Name, &li.Price, &li.Quantity); err != nil {
			return nil, fmt.Errorf("order repository: scan line row: %w", err)
		}
		lines[orderID] = append(lines[orderID], li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order repository: iterate over line rows: %w", err)
	}

	return lines, nil
}

const queryOrderUpdateStatus = `
UPDATE orders SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, table_number, total_cents, status, created_at, updated_at
`

func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status Status) (Order, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryOrderUpdateStatus, orderID, status)
	var o Order
	if err := scanOrder(row, &o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return o, ErrNotFound
		}
		return o, fmt.Errorf("%w: update status for order %d: %v", ErrQueryFailed, orderID, err)
	}
	return o, nil
}

const queryOrderDelete = "DELETE FROM orders WHERE id = $1"

// Delete removes the order and, via cascade, its line items. It returns the
// number of deleted orders.
func (r *Repository) Delete(ctx context.Context, orderID int64) (int64, error) {
	res, err := db.ExecutorFromContext(ctx, r.db).ExecContext(ctx, queryOrderDelete, orderID)
	if err != nil {
		return 0, fmt.Errorf("%w: delete order %d: %v", ErrQueryFailed, orderID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("order repository: rows affected: %w", err)
	}
	return affected, nil
}

const queryPaidTotal = "SELECT COALESCE(SUM(total_cents), 0) FROM orders WHERE status = $1"

// PaidTotal sums the totals of all paid orders, 0 when there are none.
func (r *Repository) PaidTotal(ctx context.Context) (money.Cents, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryPaidTotal, StatusPaid)
	var total money.Cents
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: sum paid orders: %v", ErrQueryFailed, err)
	}
	return total, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOrder(row scannable, o *Order) error {
	return row.Scan(&o.ID, &o.TableNumber, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
}

func checkAffected(res sql.Result, orderID int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order repository: rows affected for order %d: %w", orderID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
