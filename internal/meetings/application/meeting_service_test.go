package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/pkg/observability"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingService_CreateThenGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.meetings.Create(ctx, domain.MeetingMinuteInsert{
		Title:       "Sprint Review",
		Content:     "## Demo\n\n- search",
		MeetingDate: date(12),
		Location:    ptr("Zoom"),
		Tags:        []string{"sprint"},
	})
	require.True(t, created.Success, created.Error)
	assert.Empty(t, created.Error)
	assert.Equal(t, domain.StatusDraft, created.Data.Status)

	got := env.meetings.GetByID(ctx, created.Data.ID)
	require.True(t, got.Success, got.Error)
	assert.Equal(t, "Sprint Review", got.Data.Title)
	assert.Equal(t, "## Demo\n\n- search", got.Data.Content)
	assert.True(t, got.Data.MeetingDate.Equal(date(12)))
	assert.Equal(t, domain.StatusDraft, got.Data.Status)
	assert.Equal(t, []string{"sprint"}, got.Data.Tags)
	assert.NotNil(t, got.Data.Attendees)
	assert.Empty(t, got.Data.Attendees)

	assert.Equal(t, []string{"minutes.meeting.created"}, env.RoutingKeys())
	assert.Equal(t, created.Data.ID.String(), env.Events()[0].Body["id"])
}

func TestMeetingService_CreateThenGetKeepsWhitespace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.meetings.Create(ctx, domain.MeetingMinuteInsert{
		Title:       "  Q1 Planning ",
		Content:     "\n  indented notes\n",
		MeetingDate: date(3),
	})
	require.True(t, created.Success, created.Error)

	got := env.meetings.GetByID(ctx, created.Data.ID)
	require.True(t, got.Success, got.Error)
	assert.Equal(t, "  Q1 Planning ", got.Data.Title)
	assert.Equal(t, "\n  indented notes\n", got.Data.Content)

	title := " Q1 Planning (final) "
	updated := env.meetings.Update(ctx, created.Data.ID, domain.MeetingMinuteUpdate{Title: &title})
	require.True(t, updated.Success, updated.Error)
	assert.Equal(t, title, updated.Data.Title)
}

func TestMeetingService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)

	res := env.meetings.Create(context.Background(), domain.MeetingMinuteInsert{Title: "  ", MeetingDate: date(1)})
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, domain.ErrMeetingEmptyTitle.Error(), res.Error)

	res = env.meetings.Create(context.Background(), domain.MeetingMinuteInsert{
		Title: "x", MeetingDate: date(1), Status: "pending",
	})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrMeetingInvalidStatus.Error(), res.Error)

	assert.Empty(t, env.Events())

	list := env.meetings.List(context.Background(), domain.MeetingFilter{})
	require.True(t, list.Success)
	assert.Empty(t, list.Data)
}

func TestMeetingService_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.meetings.Create(ctx, domain.MeetingMinuteInsert{
		Title: "Ops Review", Content: "body", MeetingDate: date(3),
	})
	require.True(t, created.Success)
	time.Sleep(5 * time.Millisecond)

	status := domain.StatusPublished
	updated := env.meetings.Update(ctx, created.Data.ID, domain.MeetingMinuteUpdate{Status: &status})
	require.True(t, updated.Success, updated.Error)

	assert.Equal(t, domain.StatusPublished, updated.Data.Status)
	assert.Equal(t, created.Data.Title, updated.Data.Title)
	assert.Equal(t, created.Data.Content, updated.Data.Content)
	assert.True(t, updated.Data.MeetingDate.Equal(created.Data.MeetingDate))
	assert.True(t, updated.Data.UpdatedAt.After(created.Data.UpdatedAt))
	assert.False(t, updated.Data.UpdatedAt.Before(updated.Data.CreatedAt))

	missing := env.meetings.Update(ctx, uuid.New(), domain.MeetingMinuteUpdate{Status: &status})
	assert.False(t, missing.Success)
	assert.Equal(t, "record not found", missing.Error)

	assert.Equal(t, []string{"minutes.meeting.created", "minutes.meeting.updated"}, env.RoutingKeys())
}

func TestMeetingService_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	src := env.meetings.Create(ctx, domain.MeetingMinuteInsert{
		Title:       "Board Meeting",
		Content:     "Minutes",
		MeetingDate: date(20),
		Status:      domain.StatusPublished,
		Tags:        []string{"board"},
	})
	require.True(t, src.Success)

	dup := env.meetings.Duplicate(ctx, src.Data.ID)
	require.True(t, dup.Success, dup.Error)

	assert.NotEqual(t, src.Data.ID, dup.Data.ID)
	assert.Equal(t, "Board Meeting (Copy)", dup.Data.Title)
	assert.Equal(t, domain.StatusDraft, dup.Data.Status)
	assert.Equal(t, src.Data.Content, dup.Data.Content)
	assert.True(t, dup.Data.MeetingDate.Equal(src.Data.MeetingDate))
	assert.Equal(t, src.Data.Tags, dup.Data.Tags)

	original := env.meetings.GetByID(ctx, src.Data.ID)
	require.True(t, original.Success)
	assert.Equal(t, domain.StatusPublished, original.Data.Status)

	missing := env.meetings.Duplicate(ctx, uuid.New())
	assert.False(t, missing.Success)
	assert.Equal(t, "record not found", missing.Error)
}

func TestMeetingService_StatsInvariant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i, status := range []domain.Status{
		domain.StatusDraft, domain.StatusDraft, domain.StatusPublished, domain.StatusArchived,
	} {
		res := env.meetings.Create(ctx, domain.MeetingMinuteInsert{
			Title: "Meeting", MeetingDate: date(i + 1), Status: status,
		})
		require.True(t, res.Success)
	}

	// A status written outside the service still counts toward the total.
	_, err := env.conn.Exec(ctx,
		`INSERT INTO meeting_minutes (title, meeting_date, status) VALUES (?, ?, ?)`,
		"Legacy", env.conn.Driver().TimeValue(date(9)), "legacy")
	require.NoError(t, err)

	stats := env.meetings.Stats(ctx)
	require.True(t, stats.Success, stats.Error)
	assert.Equal(t, domain.Stats{Total: 5, Draft: 2, Published: 1, Archived: 1}, stats.Data)
	assert.GreaterOrEqual(t, stats.Data.Total, stats.Data.Draft+stats.Data.Published+stats.Data.Archived)
}

func TestMeetingService_ListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seed := []domain.MeetingMinuteInsert{
		{Title: "Hiring Sync", Content: "candidates", MeetingDate: date(1), Status: domain.StatusPublished},
		{Title: "Roadmap", Content: "hiring plan for Q3", MeetingDate: date(2), Status: domain.StatusDraft},
		{Title: "Offsite", Content: "venue", MeetingDate: date(3), Status: domain.StatusPublished},
	}
	for _, in := range seed {
		require.True(t, env.meetings.Create(ctx, in).Success)
	}

	res := env.meetings.List(ctx, domain.MeetingFilter{Status: domain.StatusPublished, Search: "hiring"})
	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Hiring Sync", res.Data[0].Title)
	for _, m := range res.Data {
		assert.Equal(t, domain.StatusPublished, m.Status)
	}

	res = env.meetings.List(ctx, domain.MeetingFilter{Search: "HIRING"})
	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Roadmap", res.Data[0].Title)

	bad := env.meetings.List(ctx, domain.MeetingFilter{Status: "unknown"})
	assert.False(t, bad.Success)
	assert.Equal(t, domain.ErrMeetingInvalidStatus.Error(), bad.Error)
}

func TestMeetingService_DeleteEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.meetings.Create(ctx, domain.MeetingMinuteInsert{Title: "Temp", MeetingDate: date(5)})
	require.True(t, created.Success)

	del := env.meetings.Delete(ctx, created.Data.ID)
	assert.True(t, del.Success)
	assert.Nil(t, del.Data)
	assert.Empty(t, del.Error)

	got := env.meetings.GetByID(ctx, created.Data.ID)
	assert.False(t, got.Success)
	assert.Nil(t, got.Data)
	assert.Equal(t, "record not found", got.Error)

	again := env.meetings.Delete(ctx, created.Data.ID)
	assert.True(t, again.Success)
}

func TestMeetingService_RecordsMetrics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.meetings.Stats(ctx)
	env.meetings.GetByID(ctx, uuid.New())

	entity := observability.T(observability.EntityKey, domain.EntityMeeting)
	assert.Equal(t, int64(1), env.metrics.GetCounter(observability.MetricOperationTotal,
		entity, observability.T("operation", "meeting.stats"), observability.T("outcome", observability.OutcomeSuccess)))
	assert.Equal(t, int64(1), env.metrics.GetCounter(observability.MetricOperationErrors,
		entity, observability.T("operation", "meeting.get")))
}

func TestMeetingService_MissingSchema(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.conn.Exec(ctx, `DROP TABLE meeting_attendees; DROP TABLE meeting_minutes;`)
	require.NoError(t, err)

	res := env.meetings.List(ctx, domain.MeetingFilter{})
	assert.False(t, res.Success)
	assert.Equal(t, application.MessageMissingRelation, res.Error)

	assert.False(t, env.health.Check(ctx))
}
