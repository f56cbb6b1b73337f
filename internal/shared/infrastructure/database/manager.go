package database

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/minutes/pkg/config"
)

// ConfigurationError reports a required connection setting that is missing.
// It is raised before any connector runs and is not a per-operation failure.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return "missing required configuration: " + e.Key
}

// Manager lazily opens one store connection and hands out the same handle
// for the rest of the process. A failed attempt is not cached.
type Manager struct {
	load    func() (Config, error)
	connect Connector

	mu   sync.Mutex
	conn Connection
}

// NewManager creates a manager that reads its settings with load and opens
// the connection with connect. A nil connect uses NewConnection.
func NewManager(load func() (Config, error), connect Connector) *Manager {
	if connect == nil {
		connect = NewConnection
	}
	return &Manager{load: load, connect: connect}
}

// Connection returns the shared connection, creating it on first use.
func (m *Manager) Connection(ctx context.Context) (Connection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return m.conn, nil
	}

	cfg, err := m.load()
	if err != nil {
		return nil, err
	}
	if cfg.URL == "" {
		return nil, &ConfigurationError{Key: config.EnvStoreURL}
	}
	if cfg.AccessKey == "" {
		return nil, &ConfigurationError{Key: config.EnvStoreKey}
	}

	conn, err := m.connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	m.conn = conn
	return conn, nil
}

var (
	defaultManagerOnce sync.Once
	defaultManager     *Manager
)

// DefaultManager returns the process-wide manager backed by environment
// configuration.
func DefaultManager() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager(ConfigFromEnv, nil)
	})
	return defaultManager
}

// ConfigFromEnv builds a Config from the application configuration.
func ConfigFromEnv() (Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return Config{}, err
	}
	return FromAppConfig(cfg), nil
}

// FromAppConfig extracts the store settings from the application configuration.
func FromAppConfig(cfg *config.Config) Config {
	return Config{
		Driver:    Driver(cfg.StoreDriver),
		URL:       cfg.StoreURL,
		AccessKey: cfg.StoreKey,
		MaxConns:  cfg.StoreMaxConns,
	}
}
