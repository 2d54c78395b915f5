package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"comanda/internal/platform/db"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("staff repository: staff not found")
	ErrDuplicateEmail = errors.New("staff repository: email already taken")
	ErrQueryFailed    = errors.New("staff repository: query failed")
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

type CreateParams struct {
	Email        string
	PasswordHash string
}

const queryStaffCreate = `
INSERT INTO staff (email, password_hash)
VALUES ($1, $2)
RETURNING id, email, created_at, updated_at
`

func (r *Repository) Create(ctx context.Context, params CreateParams) (Staff, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryStaffCreate, params.Email, params.PasswordHash)
	var s Staff
	if err := row.Scan(&s.ID, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return s, ErrDuplicateEmail
		}
		return s, fmt.Errorf("%w: create staff %s: %v", ErrQueryFailed, params.Email, err)
	}
	return s, nil
}

const queryStaffFindByEmail = `
SELECT id, email, password_hash, created_at, updated_at FROM staff
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindByEmail(ctx context.Context, email string) (Staff, error) {
	row := db.ExecutorFromContext(ctx, r.db).QueryRowContext(ctx, queryStaffFindByEmail, email)
	var s Staff
	if err := row.Scan(&s.ID, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, ErrNotFound
		}
		return s, fmt.Errorf("%w: find staff with email %s: %v", ErrQueryFailed, email, err)
	}
	return s, nil
}
