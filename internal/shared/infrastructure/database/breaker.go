package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig configures the store circuit breaker.
type BreakerConfig struct {
	// FailureThreshold trips the breaker after this many consecutive
	// transport failures.
	FailureThreshold uint32
	// Timeout is the period of the open state.
	Timeout time.Duration
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns a sensible default configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// BreakerConnection guards a Connection with a circuit breaker. Only
// transport failures count against it; errors reported by the store
// itself are successful round trips.
type BreakerConnection struct {
	Connection
	cb *gobreaker.CircuitBreaker[any]
}

// NewBreakerConnection wraps conn with a circuit breaker.
func NewBreakerConnection(conn Connection, cfg BreakerConfig, logger *slog.Logger) *BreakerConnection {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        "store",
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsServerError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &BreakerConnection{
		Connection: conn,
		cb:         gobreaker.NewCircuitBreaker[any](settings),
	}
}

// State returns the current breaker state.
func (c *BreakerConnection) State() gobreaker.State {
	return c.cb.State()
}

// Exec executes a query through the breaker.
func (c *BreakerConnection) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	out, err := c.cb.Execute(func() (any, error) {
		return c.Connection.Exec(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return out.(Result), nil
}

// Query executes a query through the breaker.
func (c *BreakerConnection) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	out, err := c.cb.Execute(func() (any, error) {
		return c.Connection.Query(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return out.(Rows), nil
}

// QueryRow defers the breaker check to Scan, where the error surfaces.
func (c *BreakerConnection) QueryRow(ctx context.Context, query string, args ...any) Row {
	return &breakerRow{cb: c.cb, row: func() Row { return c.Connection.QueryRow(ctx, query, args...) }}
}

type breakerRow struct {
	cb  *gobreaker.CircuitBreaker[any]
	row func() Row
}

func (r *breakerRow) Scan(dest ...any) error {
	_, err := r.cb.Execute(func() (any, error) {
		return nil, r.row().Scan(dest...)
	})
	return err
}
