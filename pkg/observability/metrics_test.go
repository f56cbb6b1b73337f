package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}

	// Should not panic
	m.Counter("test", 1)
	m.Timing("test", time.Second)
}

func TestInMemoryMetrics(t *testing.T) {
	t.Run("Counter with tags", func(t *testing.T) {
		m := NewInMemoryMetrics()

		m.Counter("ops", 1, T("operation", "meeting.list"))
		m.Counter("ops", 1, T("operation", "meeting.get"))
		m.Counter("ops", 1, T("operation", "meeting.list"))

		assert.Equal(t, int64(2), m.GetCounter("ops", T("operation", "meeting.list")))
		assert.Equal(t, int64(1), m.GetCounter("ops", T("operation", "meeting.get")))
		assert.Len(t, m.Counters(), 2)
	})

	t.Run("Timing", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Timing("latency", time.Millisecond)
		m.Timing("latency", 2*time.Millisecond)
		assert.Len(t, m.GetTimings("latency"), 2)
	})

	t.Run("Reset", func(t *testing.T) {
		m := NewInMemoryMetrics()
		m.Counter("ops", 1)
		m.Reset()
		assert.Zero(t, m.GetCounter("ops"))
	})
}

func TestTimer_StopWithOutcome(t *testing.T) {
	m := NewInMemoryMetrics()
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf})

	StartTimer("meeting.create").WithMetrics(m).WithLogger(logger).WithTags(T("entity", "meeting")).Stop()
	StartTimer("meeting.create").WithMetrics(m).WithTags(T("entity", "meeting")).StopWithOutcome(false)

	op := []Tag{T("entity", "meeting"), T("operation", "meeting.create")}
	assert.Equal(t, int64(1), m.GetCounter(MetricOperationTotal, append(op, T("outcome", OutcomeSuccess))...))
	assert.Equal(t, int64(1), m.GetCounter(MetricOperationTotal, append(op, T("outcome", OutcomeFailure))...))
	assert.Equal(t, int64(1), m.GetCounter(MetricOperationErrors, op...))
	assert.Len(t, m.GetTimings(MetricOperationDuration, op...), 2)
	assert.Contains(t, buf.String(), "operation completed")
}

func TestHealthRegistry(t *testing.T) {
	r := NewHealthRegistry()
	r.Register("store", StoreHealthChecker(func(context.Context) bool { return true }))
	r.Register("redis", BrokerHealthChecker("redis", func(context.Context) error { return nil }))

	health := r.GetOverallHealth(context.Background())
	assert.Equal(t, HealthStatusHealthy, health.Status)
	assert.Equal(t, []string{"redis", "store"}, r.Names())

	r.Register("rabbitmq", BrokerHealthChecker("rabbitmq", func(context.Context) error {
		return errors.New("dial tcp: refused")
	}))
	health = r.GetOverallHealth(context.Background())
	assert.Equal(t, HealthStatusDegraded, health.Status)
	assert.Contains(t, health.Checks["rabbitmq"].Message, "refused")

	r.Register("store", StoreHealthChecker(func(context.Context) bool { return false }))
	health = r.GetOverallHealth(context.Background())
	assert.Equal(t, HealthStatusUnhealthy, health.Status)

	raw, err := health.ToJSON()
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"unhealthy"`)
}
