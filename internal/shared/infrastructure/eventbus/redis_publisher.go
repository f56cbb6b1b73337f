package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// ChannelPrefix is prepended to the routing key to form the pub/sub channel.
const ChannelPrefix = "minutes:"

// RedisPublisher publishes change events on Redis pub/sub channels.
type RedisPublisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisPublisher parses url, connects and verifies the server answers.
func NewRedisPublisher(ctx context.Context, url string, logger *slog.Logger) (*RedisPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis publisher connected", "addr", opt.Addr)
	return NewRedisPublisherFromClient(client, logger), nil
}

// NewRedisPublisherFromClient wraps an existing client.
func NewRedisPublisherFromClient(client *redis.Client, logger *slog.Logger) *RedisPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{client: client, logger: logger}
}

// Channel returns the pub/sub channel for a routing key.
func Channel(routingKey string) string {
	return ChannelPrefix + routingKey
}

// Publish sends payload to the routing key's channel.
func (p *RedisPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	receivers, err := p.client.Publish(ctx, Channel(routingKey), payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", routingKey, err)
	}

	p.logger.DebugContext(ctx, "message published",
		"channel", Channel(routingKey),
		"receivers", receivers,
	)
	return nil
}

// Ping checks the server connection.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the client.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
