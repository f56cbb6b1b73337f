package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names for the store connection.
const (
	EnvStoreURL = "MINUTES_STORE_URL"
	EnvStoreKey = "MINUTES_STORE_KEY"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Store
	StoreURL      string
	StoreKey      string
	StoreDriver   string
	StoreMaxConns int

	// Circuit breaker
	BreakerEnabled   bool
	BreakerFailures  int
	BreakerTimeout   time.Duration
	BreakerHalfOpenN int

	// Change notifications
	RedisURL    string
	RabbitMQURL string

	// MCP
	MCPAddr      string
	MCPAuthToken string
}

// Load loads configuration from environment variables.
// The store endpoint and access key have no defaults; their absence is
// reported when the connection is first requested.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		StoreURL:      os.Getenv(EnvStoreURL),
		StoreKey:      os.Getenv(EnvStoreKey),
		StoreDriver:   getEnv("MINUTES_STORE_DRIVER", "auto"),
		StoreMaxConns: getIntEnv("MINUTES_STORE_MAX_CONNS", 0),

		BreakerEnabled:   getBoolEnv("MINUTES_BREAKER_ENABLED", false),
		BreakerFailures:  getIntEnv("MINUTES_BREAKER_FAILURES", 5),
		BreakerTimeout:   getDurationEnv("MINUTES_BREAKER_TIMEOUT", 30*time.Second),
		BreakerHalfOpenN: getIntEnv("MINUTES_BREAKER_HALF_OPEN_REQUESTS", 1),

		RedisURL:    getEnv("REDIS_URL", ""),
		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		MCPAddr:      getEnv("MCP_ADDR", "127.0.0.1:8082"),
		MCPAuthToken: getEnv("MCP_AUTH_TOKEN", ""),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
