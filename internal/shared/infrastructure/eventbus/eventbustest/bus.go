// Package eventbustest provides an in-memory publisher for tests that need to
// observe change events.
package eventbustest

import (
	"context"
	"strings"
	"sync"

	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/eventbus"
)

var _ eventbus.Publisher = (*Bus)(nil)

// Message is a published change event as seen by a subscriber.
type Message struct {
	RoutingKey string
	Payload    []byte
}

// Handler receives messages from the bus.
type Handler func(ctx context.Context, msg Message)

type subscription struct {
	pattern string
	handler Handler
}

// Bus delivers messages synchronously to subscribers. Patterns follow AMQP
// topic rules: "*" matches one word and "#" matches zero or more.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for routing keys matching pattern.
func (b *Bus) Subscribe(pattern string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{pattern: pattern, handler: handler})
}

// Publish dispatches the message to every matching subscriber.
func (b *Bus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	msg := Message{RoutingKey: routingKey, Payload: payload}
	for _, s := range subs {
		if TopicMatch(s.pattern, routingKey) {
			s.handler(ctx, msg)
		}
	}
	return nil
}

// Close is a no-op.
func (b *Bus) Close() error {
	return nil
}

// TopicMatch reports whether routingKey matches an AMQP topic pattern.
func TopicMatch(pattern, routingKey string) bool {
	return matchWords(strings.Split(pattern, "."), strings.Split(routingKey, "."))
}

func matchWords(pattern, key []string) bool {
	if len(pattern) == 0 {
		return len(key) == 0
	}
	switch pattern[0] {
	case "#":
		for i := 0; i <= len(key); i++ {
			if matchWords(pattern[1:], key[i:]) {
				return true
			}
		}
		return false
	case "*":
		return len(key) > 0 && matchWords(pattern[1:], key[1:])
	default:
		return len(key) > 0 && pattern[0] == key[0] && matchWords(pattern[1:], key[1:])
	}
}
