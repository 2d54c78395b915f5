package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	id SERIAL PRIMARY KEY,
	migration_name VARCHAR(255) NOT NULL UNIQUE,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)
`

// Migrate applies all pending embedded SQL migrations in lexical order,
// recording each one in schema_migrations.
func Migrate(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	names, err := migrationFiles()
	if err != nil {
		return err
	}

	applied, err := appliedMigrations(ctx, conn)
	if err != nil {
		return err
	}

	for _, name := range names {
		if applied[name] {
			continue
		}

		if err := runMigration(ctx, conn, name); err != nil {
			return fmt.Errorf("run migration %s: %w", name, err)
		}

		slog.Info("Migration applied.", "migration", name)
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(entries)
	return entries, nil
}

func appliedMigrations(ctx context.Context, conn *sql.DB) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT migration_name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan migration name: %w", err)
		}
		applied[name] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over migration rows: %w", err)
	}

	return applied, nil
}

func runMigration(ctx context.Context, conn *sql.DB, name string) error {
	contents, err := migrationsFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, string(contents)); err != nil {
		rollback(tx)
		return fmt.Errorf("exec migration: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (migration_name) VALUES ($1)", name); err != nil {
		rollback(tx)
		return fmt.Errorf("record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	return nil
}
