// Package testutil starts a throwaway Postgres for integration tests.
package testutil

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/SscSPs/workorder_tracker/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestDB holds the pool and the container backing it.
type TestDB struct {
	Pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// migrationsURL resolves the repository's migrations directory regardless of the
// package the test runs from.
func migrationsURL() string {
	_, file, _, _ := runtime.Caller(0)
	return "file://" + filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// SetupTestDB starts a Postgres container, applies all migrations and registers
// cleanup on t.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("workorders"),
		postgres.WithUsername("workorders"),
		postgres.WithPassword("workorders"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	pool, err := database.NewPgxPool(ctx, connStr, true)
	if err != nil {
		t.Fatalf("Failed to connect to test DB: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(pool, migrationsURL(), slog.Default()); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	return &TestDB{Pool: pool, container: pgContainer}
}
