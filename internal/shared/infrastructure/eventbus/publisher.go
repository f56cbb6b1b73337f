package eventbus

import (
	"context"
	"errors"
	"log/slog"
)

// Publisher defines the interface for publishing change events.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// MultiPublisher fans a message out to several publishers. Every publisher
// is attempted; the failures are joined.
type MultiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher combines publishers. Nil entries are skipped.
func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	out := make([]Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return &MultiPublisher{publishers: out}
}

// Publish sends the message to every publisher.
func (m *MultiPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, routingKey, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every publisher.
func (m *MultiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of combined publishers.
func (m *MultiPublisher) Len() int {
	return len(m.publishers)
}

// NoopPublisher is a no-op publisher used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopPublisher{logger: logger}
}

// Publish logs the message but doesn't actually publish.
func (p *NoopPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	p.logger.DebugContext(ctx, "noop publish",
		"routing_key", routingKey,
		"size", len(payload),
	)
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error {
	return nil
}
