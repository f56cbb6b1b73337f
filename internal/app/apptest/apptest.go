// Package apptest builds containers over an in-memory SQLite store for tests.
package apptest

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/minutes/internal/app"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/felixgeelhaar/minutes/schema"
)

// Config returns a configuration for an in-memory store.
func Config() *config.Config {
	return &config.Config{
		AppEnv:           "test",
		LogLevel:         "error",
		StoreURL:         ":memory:",
		StoreKey:         "test",
		StoreDriver:      "sqlite",
		BreakerFailures:  5,
		BreakerTimeout:   30 * time.Second,
		BreakerHalfOpenN: 1,
	}
}

// NewContainer creates a container over a fresh in-memory store with the
// setup script applied. It is closed when the test ends.
func NewContainer(t testing.TB, opts app.Options) *app.Container {
	t.Helper()

	cfg := Config()
	opts.Manager = database.NewManager(
		func() (database.Config, error) { return database.FromAppConfig(cfg), nil },
		func(ctx context.Context, c database.Config) (database.Connection, error) {
			conn, err := sqlite.NewConnection(ctx, c)
			if err != nil {
				return nil, err
			}
			if _, err := conn.Exec(ctx, schema.SQLite); err != nil {
				_ = conn.Close()
				return nil, err
			}
			return conn, nil
		},
	)

	c, err := app.NewContainer(context.Background(), cfg, observability.DiscardLogger(), opts)
	if err != nil {
		t.Fatalf("failed to create container: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}
