package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/convert"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/pkg/observability"
)

// Options overrides the collaborators NewContainer would otherwise build.
type Options struct {
	// Manager supplies the store connection. Nil uses database.DefaultManager.
	Manager *database.Manager
	// Metrics defaults to an in-memory collector.
	Metrics observability.Metrics
	// Publisher replaces the brokers configured through REDIS_URL and
	// RABBITMQ_URL.
	Publisher eventbus.Publisher
}

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Store
	DBConn   database.Connection
	DBDriver database.Driver
	Breaker  *database.BreakerConnection

	// Change notifications
	RedisPublisher    *eventbus.RedisPublisher
	RabbitMQPublisher *eventbus.RabbitMQPublisher
	EventPublisher    eventbus.Publisher

	Repositories *Repositories

	// Services
	Meetings    *application.MeetingService
	Attendees   *application.AttendeeService
	Memberships *application.MembershipService
	Health      *application.HealthService

	HealthRegistry *observability.HealthRegistry
}

// NewContainer wires the services onto the shared store connection. A
// missing store setting is returned as *database.ConfigurationError before
// anything else is built.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: opts.Metrics,
	}
	if c.Metrics == nil {
		c.Metrics = observability.NewInMemoryMetrics()
	}

	manager := opts.Manager
	if manager == nil {
		manager = database.DefaultManager()
	}
	conn, err := manager.Connection(ctx)
	if err != nil {
		return nil, err
	}
	c.DBDriver = conn.Driver()
	c.DBConn = conn
	logger.Debug("store connection ready", "driver", string(c.DBDriver))

	if cfg.BreakerEnabled {
		c.Breaker = database.NewBreakerConnection(conn, database.BreakerConfig{
			FailureThreshold: convert.IntToUint32Clamped(cfg.BreakerFailures),
			Timeout:          cfg.BreakerTimeout,
			MaxRequests:      convert.IntToUint32Clamped(cfg.BreakerHalfOpenN),
		}, logger)
		conn = c.Breaker
	}

	if opts.Publisher != nil {
		c.EventPublisher = opts.Publisher
	} else if err := c.connectPublishers(ctx); err != nil {
		return nil, err
	}

	c.Repositories = NewRepositories(conn)

	deps := application.Dependencies{
		Logger:    logger,
		Metrics:   c.Metrics,
		Publisher: c.EventPublisher,
	}
	c.Meetings = application.NewMeetingService(c.Repositories.Meetings, deps)
	c.Attendees = application.NewAttendeeService(c.Repositories.Attendees, deps)
	c.Memberships = application.NewMembershipService(c.Repositories.Memberships, deps)
	c.Health = application.NewHealthService(conn, logger)

	c.HealthRegistry = observability.NewHealthRegistry()
	c.HealthRegistry.Register("store", observability.StoreHealthChecker(c.Health.Check))
	if c.RedisPublisher != nil {
		c.HealthRegistry.Register("redis", observability.BrokerHealthChecker("Redis", c.RedisPublisher.Ping))
	}
	if c.RabbitMQPublisher != nil {
		c.HealthRegistry.Register("rabbitmq", observability.BrokerHealthChecker("RabbitMQ", c.RabbitMQPublisher.Ping))
	}

	return c, nil
}

// connectPublishers builds the configured brokers. In development an
// unreachable broker is skipped with a warning.
func (c *Container) connectPublishers(ctx context.Context) error {
	cfg, logger := c.Config, c.Logger

	if cfg.RedisURL != "" {
		p, err := eventbus.NewRedisPublisher(ctx, cfg.RedisURL, logger)
		if err != nil {
			if !cfg.IsDevelopment() {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}
			logger.Warn("Redis not available, change events will not be sent there", "error", err)
		} else {
			c.RedisPublisher = p
		}
	}

	if cfg.RabbitMQURL != "" {
		p, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			if !cfg.IsDevelopment() {
				c.closePublishers()
				return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			logger.Warn("RabbitMQ not available, change events will not be sent there", "error", err)
		} else {
			c.RabbitMQPublisher = p
		}
	}

	var publishers []eventbus.Publisher
	if c.RedisPublisher != nil {
		publishers = append(publishers, c.RedisPublisher)
	}
	if c.RabbitMQPublisher != nil {
		publishers = append(publishers, c.RabbitMQPublisher)
	}

	switch len(publishers) {
	case 0:
		c.EventPublisher = eventbus.NewNoopPublisher(logger)
	case 1:
		c.EventPublisher = publishers[0]
	default:
		c.EventPublisher = eventbus.NewMultiPublisher(publishers...)
	}
	return nil
}

func (c *Container) closePublishers() {
	if c.RedisPublisher != nil {
		if err := c.RedisPublisher.Close(); err != nil {
			c.Logger.Warn("error closing Redis publisher", "error", err)
		}
	}
	if c.RabbitMQPublisher != nil {
		if err := c.RabbitMQPublisher.Close(); err != nil {
			c.Logger.Warn("error closing RabbitMQ publisher", "error", err)
		}
	}
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}

	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil {
			c.Logger.Warn("error closing store connection", "error", err)
		} else {
			c.Logger.Debug("store connection closed", "driver", string(c.DBDriver))
		}
	}
}
