package application_test

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.attendees.Create(ctx, domain.AttendeeInsert{Name: "Lin", Email: "lin@example.com"})
	require.True(t, created.Success, created.Error)

	got := env.attendees.GetByID(ctx, created.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, "Lin", got.Data.Name)

	updated := env.attendees.Update(ctx, created.Data.ID, domain.AttendeeUpdate{Role: ptr("Scribe")})
	require.True(t, updated.Success, updated.Error)
	assert.Equal(t, "Scribe", *updated.Data.Role)
	assert.Equal(t, "lin@example.com", updated.Data.Email)

	del := env.attendees.Delete(ctx, created.Data.ID)
	assert.True(t, del.Success)

	missing := env.attendees.GetByID(ctx, created.Data.ID)
	assert.False(t, missing.Success)
	assert.Equal(t, "record not found", missing.Error)

	assert.Equal(t, []string{
		"minutes.attendee.created",
		"minutes.attendee.updated",
		"minutes.attendee.deleted",
	}, env.RoutingKeys())
}

func TestAttendeeService_CreateThenGetKeepsWhitespace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.attendees.Create(ctx, domain.AttendeeInsert{Name: " Lin ", Email: " lin@example.com"})
	require.True(t, created.Success, created.Error)

	got := env.attendees.GetByID(ctx, created.Data.ID)
	require.True(t, got.Success, got.Error)
	assert.Equal(t, " Lin ", got.Data.Name)
	assert.Equal(t, " lin@example.com", got.Data.Email)
}

func TestAttendeeService_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res := env.attendees.Create(ctx, domain.AttendeeInsert{Email: "a@example.com"})
	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrAttendeeEmptyName.Error(), res.Error)

	upd := env.attendees.Update(ctx, uuid.New(), domain.AttendeeUpdate{Name: ptr(" ")})
	assert.False(t, upd.Success)
	assert.Equal(t, domain.ErrAttendeeEmptyName.Error(), upd.Error)

	page := env.attendees.List(ctx, domain.AttendeeFilter{Limit: -1})
	assert.False(t, page.Success)
	assert.Equal(t, domain.ErrInvalidPage.Error(), page.Error)
}

func TestAttendeeService_Search(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, in := range []domain.AttendeeInsert{
		{Name: "Maria Lopez", Email: "maria@acme.io"},
		{Name: "Tom", Email: "tom.maria@example.com"},
		{Name: "Ravi", Email: "ravi@example.com"},
	} {
		require.True(t, env.attendees.Create(ctx, in).Success)
	}

	res := env.attendees.Search(ctx, "maria")
	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Maria Lopez", res.Data[0].Name)
	assert.Equal(t, "Tom", res.Data[1].Name)

	all := env.attendees.Search(ctx, "")
	require.True(t, all.Success)
	assert.Len(t, all.Data, 3)
}
