package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds database configuration.
type Config struct {
	// Driver specifies the database driver to use.
	// If empty or "auto", it will be detected from the URL.
	Driver Driver

	// URL is the store endpoint: a PostgreSQL connection string or a
	// SQLite path ("sqlite://minutes.db", "file:minutes.db", "minutes.db").
	URL string

	// AccessKey authenticates against the store. PostgreSQL uses it as the
	// password when the URL carries none.
	AccessKey string

	// MaxConns is the maximum number of connections (PostgreSQL only).
	MaxConns int
}

// Connector opens a connection for a configuration.
type Connector func(ctx context.Context, cfg Config) (Connection, error)

// NewConnection creates a database connection based on configuration.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}

	var connect Connector
	switch driver {
	case DriverPostgres:
		connect = newPostgresConnection
	case DriverSQLite:
		connect = newSQLiteConnection
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if connect == nil {
		return nil, fmt.Errorf("database driver %s is not registered", driver)
	}
	return connect(ctx, cfg)
}

// SQLitePath strips the scheme from a SQLite endpoint.
func SQLitePath(url string) string {
	return strings.TrimPrefix(url, "sqlite://")
}

// EnsureDirectory creates the parent directory for a file path if it doesn't exist.
func EnsureDirectory(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// Driver implementations register themselves from their init functions,
// so importing a driver package is what makes it available.
var (
	newPostgresConnection Connector
	newSQLiteConnection   Connector
)

// RegisterPostgresDriver registers the PostgreSQL connection factory.
func RegisterPostgresDriver(fn Connector) {
	newPostgresConnection = fn
}

// RegisterSQLiteDriver registers the SQLite connection factory.
func RegisterSQLiteDriver(fn Connector) {
	newSQLiteConnection = fn
}
