package application_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/infrastructure/persistence"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/eventbus/eventbustest"
	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/felixgeelhaar/minutes/schema"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	RoutingKey string
	Body       map[string]any
}

type testEnv struct {
	conn        database.Connection
	meetings    *application.MeetingService
	attendees   *application.AttendeeService
	memberships *application.MembershipService
	health      *application.HealthService
	metrics     *observability.InMemoryMetrics

	mu     sync.Mutex
	events []recordedEvent
}

func (e *testEnv) Events() []recordedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]recordedEvent, len(e.events))
	copy(out, e.events)
	return out
}

func (e *testEnv) RoutingKeys() []string {
	var keys []string
	for _, ev := range e.Events() {
		keys = append(keys, ev.RoutingKey)
	}
	return keys
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, database.Config{URL: ":memory:", AccessKey: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(ctx, schema.SQLite)
	require.NoError(t, err)

	env := &testEnv{conn: conn, metrics: observability.NewInMemoryMetrics()}

	bus := eventbustest.NewBus()
	bus.Subscribe("minutes.#", func(_ context.Context, msg eventbustest.Message) {
		var body map[string]any
		_ = json.Unmarshal(msg.Payload, &body)
		env.mu.Lock()
		env.events = append(env.events, recordedEvent{RoutingKey: msg.RoutingKey, Body: body})
		env.mu.Unlock()
	})

	deps := application.Dependencies{
		Logger:    observability.DiscardLogger(),
		Metrics:   env.metrics,
		Publisher: bus,
	}
	env.meetings = application.NewMeetingService(persistence.NewMeetingRepository(conn), deps)
	env.attendees = application.NewAttendeeService(persistence.NewAttendeeRepository(conn), deps)
	env.memberships = application.NewMembershipService(persistence.NewMembershipRepository(conn), deps)
	env.health = application.NewHealthService(conn, deps.Logger)
	return env
}

func date(day int) time.Time {
	return time.Date(2024, 2, day, 14, 30, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
