package attendance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	internalApp "github.com/felixgeelhaar/minutes/internal/app"
	"github.com/felixgeelhaar/minutes/internal/app/apptest"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*cli.App, uuid.UUID, uuid.UUID) {
	t.Helper()

	app := cli.FromContainer(apptest.NewContainer(t, internalApp.Options{}))
	cli.SetApp(app)
	t.Cleanup(func() { cli.SetApp(nil) })

	ctx := context.Background()
	m := app.Meetings.Create(ctx, domain.MeetingMinuteInsert{
		Title:       "All Hands",
		MeetingDate: time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC),
	})
	require.True(t, m.Success)
	a := app.Attendees.Create(ctx, domain.AttendeeInsert{Name: "Priya", Email: "priya@example.com"})
	require.True(t, a.Success)

	return app, m.Data.ID, a.Data.ID
}

func exec(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	defer cmd.SetOut(nil)

	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func TestAttendanceLifecycle(t *testing.T) {
	app, meetingID, attendeeID := setupTestApp(t)
	m, a := meetingID.String(), attendeeID.String()

	addStatus = ""
	out, err := exec(t, addCmd, m, a)
	require.NoError(t, err)
	assert.Contains(t, out, "Added attendee as invited.")

	out, err = exec(t, setCmd, m, a, "attended")
	require.NoError(t, err)
	assert.Contains(t, out, "Attendance set to attended.")

	out, err = exec(t, listCmd, m)
	require.NoError(t, err)
	assert.Contains(t, out, "Attendance (1):")
	assert.Contains(t, out, "Priya <priya@example.com>")

	out, err = exec(t, removeCmd, m, a)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed attendee")

	links := app.Memberships.GetByMeetingID(context.Background(), meetingID)
	require.True(t, links.Success)
	assert.Empty(t, links.Data)
}

func TestAttendanceFailures(t *testing.T) {
	_, meetingID, attendeeID := setupTestApp(t)
	m, a := meetingID.String(), attendeeID.String()

	addStatus = "late"
	_, err := exec(t, addCmd, m, a)
	assert.EqualError(t, err, domain.ErrInvalidAttendanceStatus.Error())
	addStatus = ""

	_, err = exec(t, setCmd, m, a, "absent")
	assert.EqualError(t, err, "record not found")

	_, err = exec(t, addCmd, "bogus", a)
	assert.ErrorContains(t, err, "invalid meeting ID")

	_, err = exec(t, addCmd, m, "bogus")
	assert.ErrorContains(t, err, "invalid attendee ID")
}
