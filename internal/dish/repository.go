package dish

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comanda/internal/pkg/money"
	"comanda/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("dish repository: dish not found")
	ErrQueryFailed = errors.New("dish repository: query failed")
)

type Repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

type CreateParams struct {
	Name  string
	Price money.Cents
}

const queryDishCreate = `
INSERT INTO dishes (name, price_cents)
VALUES ($1, $2)
RETURNING id, name, price_cents, created_at, updated_at
`

func (r *Repository) Create(ctx context.Context, params CreateParams) (Dish, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryDishCreate, params.Name, params.Price)
	var d Dish
	if err := row.Scan(&d.ID, &d.Name, &d.Price, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return d, fmt.Errorf("%w: create dish %s: %v", ErrQueryFailed, params.Name, err)
	}
	return d, nil
}

const queryDishList = "SELECT id, name, price_cents, created_at, updated_at FROM dishes ORDER BY name"

func (r *Repository) List(ctx context.Context) ([]Dish, error) {
	rows, err := db.ExecutorFromContext(ctx, r.db).QueryContext(ctx, queryDishList)
	if err != nil {
		return nil, fmt.Errorf("%w: list dishes: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	return scanDishes(rows)
}

const queryDishFind = "SELECT id, name, price_cents, created_at, updated_at FROM dishes WHERE id = $1"

func (r *Repository) Find(ctx context.Context, dishID int64) (Dish, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryDishFind, dishID)
	var d Dish
	if err := row.Scan(&d.ID, &d.Name, &d.Price, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return d, ErrNotFound
		}
		return d, fmt.Errorf("%w: find dish with id %d: %v", ErrQueryFailed, dishID, err)
	}
	return d, nil
}

const queryDishListByIDs = "SELECT id, name, price_cents, created_at, updated_at FROM dishes WHERE id = ANY($1)"

// ListByIDs returns the dishes matching ids in a single query. Missing ids
// are not an error here; callers compare lengths to detect them.
func (r *Repository) ListByIDs(ctx context.Context, ids []int64) ([]Dish, error) {
	rows, err := db.ExecutorFromContext(ctx, r.db).QueryContext(ctx, queryDishListByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: list dishes by ids %v: %v", ErrQueryFailed, ids, err)
	}
	defer rows.Close()

	return scanDishes(rows)
}

func scanDishes(rows *sql.Rows) ([]Dish, error) {
	var dishes []Dish
	for rows.Next() {
		var d Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Price, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("dish repository: scan row: %w", err)
		}
		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dish repository: iterate over dish rows: %w", err)
	}

	return dishes, nil
}
