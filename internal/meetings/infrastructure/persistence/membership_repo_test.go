package persistence

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository_AddAndList(t *testing.T) {
	conn := setupTestConn(t)
	meetings := NewMeetingRepository(conn)
	attendees := NewAttendeeRepository(conn)
	repo := NewMembershipRepository(conn)
	ctx := context.Background()

	m := createTestMeeting(t, meetings, "Roadmap", day(2), domain.StatusDraft)
	zoe := createTestAttendee(t, attendees, "Zoe", "zoe@example.com")
	ann := createTestAttendee(t, attendees, "Ann", "ann@example.com")

	link, err := repo.Add(ctx, m.ID, zoe.ID, domain.AttendanceInvited)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, link.ID)
	assert.Equal(t, m.ID, link.MeetingID)
	assert.Equal(t, zoe.ID, link.AttendeeID)
	assert.Equal(t, domain.AttendanceInvited, link.AttendanceStatus)
	assert.False(t, link.CreatedAt.IsZero())

	_, err = repo.Add(ctx, m.ID, ann.ID, domain.AttendanceAttended)
	require.NoError(t, err)

	links, err := repo.ListByMeeting(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, ann.ID, links[0].AttendeeID)
	require.NotNil(t, links[0].Attendee)
	assert.Equal(t, "Ann", links[0].Attendee.Name)
	assert.Equal(t, domain.AttendanceAttended, links[0].AttendanceStatus)
	assert.Equal(t, "Zoe", links[1].Attendee.Name)

	empty, err := repo.ListByMeeting(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMembershipRepository_AddRejectsDuplicatePair(t *testing.T) {
	conn := setupTestConn(t)
	meetings := NewMeetingRepository(conn)
	attendees := NewAttendeeRepository(conn)
	repo := NewMembershipRepository(conn)
	ctx := context.Background()

	m := createTestMeeting(t, meetings, "Roadmap", day(2), domain.StatusDraft)
	a := createTestAttendee(t, attendees, "Zoe", "zoe@example.com")

	_, err := repo.Add(ctx, m.ID, a.ID, domain.AttendanceInvited)
	require.NoError(t, err)

	_, err = repo.Add(ctx, m.ID, a.ID, domain.AttendanceAttended)
	require.Error(t, err)
	assert.True(t, database.IsServerError(err))
}

func TestMembershipRepository_AddRequiresExistingRows(t *testing.T) {
	conn := setupTestConn(t)
	repo := NewMembershipRepository(conn)

	_, err := repo.Add(context.Background(), uuid.New(), uuid.New(), domain.AttendanceInvited)
	assert.Error(t, err)
}

func TestMembershipRepository_UpdateStatusAndRemove(t *testing.T) {
	conn := setupTestConn(t)
	meetings := NewMeetingRepository(conn)
	attendees := NewAttendeeRepository(conn)
	repo := NewMembershipRepository(conn)
	ctx := context.Background()

	m := createTestMeeting(t, meetings, "Review", day(3), domain.StatusDraft)
	a := createTestAttendee(t, attendees, "Sam", "sam@example.com")
	added, err := repo.Add(ctx, m.ID, a.ID, domain.AttendanceInvited)
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, m.ID, a.ID, domain.AttendanceAbsent)
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, domain.AttendanceAbsent, updated.AttendanceStatus)

	require.NoError(t, repo.Remove(ctx, m.ID, a.ID))
	assert.NoError(t, repo.Remove(ctx, m.ID, a.ID))

	_, err = repo.UpdateStatus(ctx, m.ID, a.ID, domain.AttendanceAttended)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMembershipRepository_MeetingDeleteCascades(t *testing.T) {
	conn := setupTestConn(t)
	meetings := NewMeetingRepository(conn)
	attendees := NewAttendeeRepository(conn)
	repo := NewMembershipRepository(conn)
	ctx := context.Background()

	m := createTestMeeting(t, meetings, "Gone", day(3), domain.StatusDraft)
	a := createTestAttendee(t, attendees, "Kim", "kim@example.com")
	_, err := repo.Add(ctx, m.ID, a.ID, domain.AttendanceInvited)
	require.NoError(t, err)

	require.NoError(t, meetings.Delete(ctx, m.ID))

	links, err := repo.ListByMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	still, err := attendees.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kim", still.Name)
}
