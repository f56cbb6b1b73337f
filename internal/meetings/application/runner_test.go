package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panickingRepo panics on every call.
type panickingRepo struct {
	domain.MeetingRepository
}

func (panickingRepo) List(context.Context, domain.MeetingFilter) ([]domain.MeetingMinute, error) {
	panic("nil map write")
}

func (panickingRepo) Statuses(context.Context) ([]domain.Status, error) {
	var m map[string]int
	m["x"]++
	return nil, nil
}

func TestRun_RecoversPanics(t *testing.T) {
	svc := application.NewMeetingService(panickingRepo{}, application.Dependencies{
		Logger: observability.DiscardLogger(),
	})

	res := svc.List(context.Background(), domain.MeetingFilter{})
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, application.MessageUnexpected, res.Error)

	stats := svc.Stats(context.Background())
	assert.False(t, stats.Success)
	assert.Equal(t, application.MessageUnexpected, stats.Error)
}

// stubMeetingRepo returns canned values.
type stubMeetingRepo struct {
	domain.MeetingRepository
	created *domain.MeetingMinute
}

func (s stubMeetingRepo) Create(_ context.Context, in domain.MeetingMinuteInsert) (*domain.MeetingMinute, error) {
	m := *s.created
	m.Title = in.Title
	return &m, nil
}

type brokenPublisher struct{ calls int }

func (p *brokenPublisher) Publish(context.Context, string, []byte) error {
	p.calls++
	return errors.New("broker unavailable")
}

func (p *brokenPublisher) Close() error { return nil }

func TestRun_PublishFailureDoesNotAffectResult(t *testing.T) {
	metrics := observability.NewInMemoryMetrics()
	publisher := &brokenPublisher{}
	svc := application.NewMeetingService(
		stubMeetingRepo{created: &domain.MeetingMinute{ID: uuid.New(), Status: domain.StatusDraft}},
		application.Dependencies{
			Logger:    observability.DiscardLogger(),
			Metrics:   metrics,
			Publisher: publisher,
		},
	)

	res := svc.Create(context.Background(), domain.MeetingMinuteInsert{Title: "Sync", MeetingDate: date(1)})
	require.True(t, res.Success)
	assert.Equal(t, "Sync", res.Data.Title)
	assert.Equal(t, 1, publisher.calls)
	assert.Equal(t, int64(1), metrics.GetCounter(observability.MetricEventsPublishFailed,
		observability.T("routing_key", "minutes.meeting.created")))
}

func TestNewServices_DefaultDependencies(t *testing.T) {
	svc := application.NewMeetingService(
		stubMeetingRepo{created: &domain.MeetingMinute{ID: uuid.New()}},
		application.Dependencies{},
	)

	res := svc.Create(context.Background(), domain.MeetingMinuteInsert{Title: "Defaults", MeetingDate: date(2)})
	assert.True(t, res.Success)
}

func TestNotify_CarriesTracingIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := observability.WithCorrelationID(context.Background(), "corr-7")
	ctx = observability.WithRequestID(ctx, "req-42")

	res := env.attendees.Create(ctx, domain.AttendeeInsert{Name: "Ada", Email: "ada@example.com"})
	require.True(t, res.Success, res.Error)

	events := env.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "minutes.attendee.created", events[0].RoutingKey)
	assert.Equal(t, "corr-7", events[0].Body["correlation_id"])
	assert.Equal(t, "req-42", events[0].Body["request_id"])
}
