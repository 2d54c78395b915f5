package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type txCtxKey int

const txKey txCtxKey = iota

func NewContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Repositories use
// it to join the current transaction when one is in flight.
func TxFromContext(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey).(*sql.Tx); ok {
		return tx
	}
	return nil
}

// ExecutorFromContext returns the transaction stored in ctx, falling back to
// the plain connection when the call is not transactional.
func ExecutorFromContext(ctx context.Context, conn *sql.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return conn
}

type SQLTxManager struct {
	db *sql.DB
}

var _ TxManager = (*SQLTxManager)(nil)

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{db: db}
}

// RunInTx uses a named return so the deferred commit error reaches the
// caller; otherwise a failed commit would be reported as success.
func (tm *SQLTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txCtx := NewContextWithTx(ctx, tx)

	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		} else if err != nil {
			rollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(txCtx)
	return err
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		slog.Error("failed to rollback transaction", "reason", err)
	}
}
