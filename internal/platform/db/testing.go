package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"

	"comanda/internal/config"
)

// Setup connects to the test database described by .env.testing and opens a
// transaction that is rolled back when the test finishes. Tests are skipped
// when no test database is configured.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	const projRoot = "../../../"

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Skipf("no test database configured: %v", err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatalf("failed to load config file: %v", err)
	}

	conn, err := NewPostgresDB(t.Context(), cfg.DB)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(t.Context(), conn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
		if err := conn.Close(); err != nil {
			t.Logf("failed to close connection: %v", err)
		}
	})

	return conn, tx
}
