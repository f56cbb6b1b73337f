package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/minutes/schema"
	"github.com/stretchr/testify/require"
)

// setupTestConn opens an in-memory SQLite store with the schema applied.
func setupTestConn(t *testing.T) database.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, database.Config{URL: ":memory:", AccessKey: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(ctx, schema.SQLite)
	require.NoError(t, err, "Failed to apply SQLite schema")

	return conn
}

func createTestMeeting(t *testing.T, repo *MeetingRepository, title string, date time.Time, status domain.Status) *domain.MeetingMinute {
	t.Helper()

	m, err := repo.Create(context.Background(), domain.MeetingMinuteInsert{
		Title:       title,
		Content:     "Notes for " + title,
		MeetingDate: date,
		Status:      status,
	})
	require.NoError(t, err)
	return m
}

func createTestAttendee(t *testing.T, repo *AttendeeRepository, name, email string) *domain.Attendee {
	t.Helper()

	a, err := repo.Create(context.Background(), domain.AttendeeInsert{Name: name, Email: email})
	require.NoError(t, err)
	return a
}

func day(n int) time.Time {
	return time.Date(2024, 1, n, 10, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
