package observability

import (
	"log/slog"
	"time"
)

// Timer tracks the duration of an operation and records metrics on stop.
type Timer struct {
	operation string
	start     time.Time
	logger    *slog.Logger
	metrics   Metrics
	tags      []Tag
}

// StartTimer creates a new timer for the given operation.
func StartTimer(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
	}
}

// WithLogger adds a logger; completions are logged at debug level.
func (t *Timer) WithLogger(logger *slog.Logger) *Timer {
	t.logger = logger
	return t
}

// WithMetrics adds a metrics collector to the timer.
func (t *Timer) WithMetrics(metrics Metrics) *Timer {
	t.metrics = metrics
	return t
}

// WithTags adds tags to the timer for metrics labeling.
func (t *Timer) WithTags(tags ...Tag) *Timer {
	t.tags = append(t.tags, tags...)
	return t
}

// Stop records a successful completion.
func (t *Timer) Stop() time.Duration {
	return t.StopWithOutcome(true)
}

// StopWithOutcome records the duration and counts the operation under a
// success or failure outcome tag.
func (t *Timer) StopWithOutcome(ok bool) time.Duration {
	duration := time.Since(t.start)

	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}

	if t.logger != nil {
		t.logger.Debug("operation completed",
			OperationKey, t.operation,
			DurationKey, duration.Milliseconds(),
			"outcome", outcome,
		)
	}

	if t.metrics != nil {
		tags := append(append([]Tag{}, t.tags...), T("operation", t.operation))
		t.metrics.Timing(MetricOperationDuration, duration, tags...)
		t.metrics.Counter(MetricOperationTotal, 1, append(tags, T("outcome", outcome))...)
		if !ok {
			t.metrics.Counter(MetricOperationErrors, 1, tags...)
		}
	}

	return duration
}

// Elapsed returns the elapsed time without stopping the timer.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
