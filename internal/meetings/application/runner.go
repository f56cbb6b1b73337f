package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	sharedDomain "github.com/felixgeelhaar/minutes/internal/shared/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/google/uuid"
)

// Dependencies are the collaborators shared by every service. Nil fields
// fall back to slog.Default, no-op metrics and a no-op publisher.
type Dependencies struct {
	Logger    *slog.Logger
	Metrics   observability.Metrics
	Publisher eventbus.Publisher
}

type runner struct {
	entity    string
	logger    *slog.Logger
	metrics   observability.Metrics
	publisher eventbus.Publisher
}

func newRunner(entity string, deps Dependencies) runner {
	r := runner{
		entity:    entity,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		publisher: deps.Publisher,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.metrics == nil {
		r.metrics = observability.NoopMetrics{}
	}
	if r.publisher == nil {
		r.publisher = eventbus.NewNoopPublisher(r.logger)
	}
	return r
}

// run executes fn and folds its outcome into an envelope. Panics are
// recovered and reported as MessageUnexpected.
func run[T any](ctx context.Context, r runner, op string, fn func(ctx context.Context) (T, error)) (res Result[T]) {
	operation := r.entity + "." + op
	timer := observability.StartTimer(operation).
		WithLogger(r.logger).
		WithMetrics(r.metrics).
		WithTags(observability.T(observability.EntityKey, r.entity))

	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "recovered panic",
				observability.OperationKey, operation,
				observability.EntityKey, r.entity,
				"panic", fmt.Sprint(p),
				"stack", string(debug.Stack()),
			)
			res = Fail[T](MessageUnexpected)
		}
		timer.StopWithOutcome(res.Success)
	}()

	data, err := fn(ctx)
	if err != nil {
		msg := ErrorMessage(err)
		level := slog.LevelError
		if domain.IsValidationError(err) || errors.Is(err, domain.ErrNotFound) {
			level = slog.LevelWarn
		}
		r.logger.Log(ctx, level, "operation failed",
			observability.OperationKey, operation,
			observability.EntityKey, r.entity,
			observability.ErrorKey, err.Error(),
		)
		return Fail[T](msg)
	}
	return Ok(data)
}

// notify publishes a change event. Failures are logged and counted; they
// never affect the caller's result.
func (r runner) notify(ctx context.Context, entity, action string, id uuid.UUID, data any) {
	routingKey := domain.RoutingKey(entity, action)
	defer func() {
		if p := recover(); p != nil {
			r.logger.WarnContext(ctx, "change publish panicked",
				"routing_key", routingKey,
				"panic", fmt.Sprint(p),
			)
		}
	}()

	event := domain.NewChangeEvent(entity, action, id, data)
	event.SetMetadata(sharedDomain.EventMetadata{
		CorrelationID: observability.CorrelationIDFromContext(ctx),
		RequestID:     observability.RequestIDFromContext(ctx),
	})

	payload, err := json.Marshal(event)
	if err == nil {
		err = r.publisher.Publish(ctx, routingKey, payload)
	}
	if err != nil {
		r.metrics.Counter(observability.MetricEventsPublishFailed, 1, observability.T("routing_key", routingKey))
		r.logger.WarnContext(ctx, "change publish failed",
			"routing_key", routingKey,
			observability.ErrorKey, err.Error(),
		)
		return
	}
	r.metrics.Counter(observability.MetricEventsPublished, 1, observability.T("routing_key", routingKey))
}
