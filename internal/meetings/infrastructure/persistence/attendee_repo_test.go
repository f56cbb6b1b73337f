package persistence

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeRepository_CreateAndFind(t *testing.T) {
	conn := setupTestConn(t)
	repo := NewAttendeeRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.AttendeeInsert{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Role:       ptr("Chair"),
		Department: ptr("Engineering"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Chair", *created.Role)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendeeRepository_List(t *testing.T) {
	conn := setupTestConn(t)
	repo := NewAttendeeRepository(conn)
	ctx := context.Background()

	createTestAttendee(t, repo, "Charlie", "charlie@corp.io")
	createTestAttendee(t, repo, "alice", "alice@example.com")
	createTestAttendee(t, repo, "Bob", "bob@example.com")

	all, err := repo.List(ctx, domain.AttendeeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bob", all[0].Name)
	assert.Equal(t, "Charlie", all[1].Name)
	assert.Equal(t, "alice", all[2].Name)

	byEmail, err := repo.List(ctx, domain.AttendeeFilter{Search: "EXAMPLE.COM"})
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	byName, err := repo.List(ctx, domain.AttendeeFilter{Search: "char"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "charlie@corp.io", byName[0].Email)

	paged, err := repo.List(ctx, domain.AttendeeFilter{Limit: 1, Offset: 2})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "alice", paged[0].Name)
}

func TestAttendeeRepository_Update(t *testing.T) {
	conn := setupTestConn(t)
	repo := NewAttendeeRepository(conn)
	ctx := context.Background()

	a := createTestAttendee(t, repo, "Grace", "grace@example.com")

	updated, err := repo.Update(ctx, a.ID, domain.AttendeeUpdate{Department: ptr("Navy")})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.Name)
	assert.Equal(t, "grace@example.com", updated.Email)
	assert.Equal(t, "Navy", *updated.Department)
	assert.Nil(t, updated.Role)

	_, err = repo.Update(ctx, uuid.New(), domain.AttendeeUpdate{Name: ptr("Nobody")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendeeRepository_DeleteCascadesLinks(t *testing.T) {
	conn := setupTestConn(t)
	meetings := NewMeetingRepository(conn)
	repo := NewAttendeeRepository(conn)
	links := NewMembershipRepository(conn)
	ctx := context.Background()

	m := createTestMeeting(t, meetings, "Sync", day(1), domain.StatusDraft)
	a := createTestAttendee(t, repo, "Temp", "temp@example.com")
	_, err := links.Add(ctx, m.ID, a.ID, domain.AttendanceInvited)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.NoError(t, repo.Delete(ctx, a.ID))

	remaining, err := links.ListByMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
