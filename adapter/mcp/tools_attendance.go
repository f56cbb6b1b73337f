package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
)

type attendanceInput struct {
	MeetingID        string `json:"meeting_id" jsonschema:"required"`
	AttendeeID       string `json:"attendee_id" jsonschema:"required"`
	AttendanceStatus string `json:"attendance_status,omitempty"`
}

func registerAttendanceTools(srv *mcp.Server, h handlers) {
	srv.Tool("attendance.add").
		Description("Add an attendee to a meeting. attendance_status is invited, attended or absent and defaults to invited.").
		Handler(h.attendanceAdd)

	srv.Tool("attendance.remove").
		Description("Remove an attendee from a meeting").
		Handler(h.attendanceRemove)

	srv.Tool("attendance.set").
		Description("Change the attendance status of an attendee linked to a meeting").
		Handler(h.attendanceSet)

	srv.Tool("attendance.list").
		Description("List a meeting's attendance records, each with the attendee nested").
		Handler(h.attendanceList)
}

func (in attendanceInput) ids() (uuid.UUID, uuid.UUID, error) {
	meetingID, err := parseUUID("meeting_id", in.MeetingID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	attendeeID, err := parseUUID("attendee_id", in.AttendeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return meetingID, attendeeID, nil
}

func (h handlers) attendanceAdd(ctx context.Context, input attendanceInput) (application.Result[*domain.MeetingAttendee], error) {
	meetingID, attendeeID, err := input.ids()
	if err != nil {
		return invalid[*domain.MeetingAttendee](err), nil
	}
	return h.deps.Memberships.AddToMeeting(ctx, meetingID, attendeeID, domain.AttendanceStatus(input.AttendanceStatus)), nil
}

func (h handlers) attendanceRemove(ctx context.Context, input attendanceInput) (application.Result[application.Void], error) {
	meetingID, attendeeID, err := input.ids()
	if err != nil {
		return invalid[application.Void](err), nil
	}
	return h.deps.Memberships.RemoveFromMeeting(ctx, meetingID, attendeeID), nil
}

func (h handlers) attendanceSet(ctx context.Context, input attendanceInput) (application.Result[*domain.MeetingAttendee], error) {
	meetingID, attendeeID, err := input.ids()
	if err != nil {
		return invalid[*domain.MeetingAttendee](err), nil
	}
	return h.deps.Memberships.UpdateAttendanceStatus(ctx, meetingID, attendeeID, domain.AttendanceStatus(input.AttendanceStatus)), nil
}

func (h handlers) attendanceList(ctx context.Context, input meetingIDInput) (application.Result[[]domain.MeetingAttendeeWithAttendee], error) {
	meetingID, err := parseUUID("meeting_id", input.MeetingID)
	if err != nil {
		return invalid[[]domain.MeetingAttendeeWithAttendee](err), nil
	}
	return h.deps.Memberships.GetByMeetingID(ctx, meetingID), nil
}
