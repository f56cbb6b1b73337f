package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// MeetingRepository defines persistence for meeting records.
type MeetingRepository interface {
	List(ctx context.Context, filter MeetingFilter) ([]MeetingMinute, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MeetingMinute, error)
	// FindDetail loads a meeting and its linked attendees in one fetch.
	FindDetail(ctx context.Context, id uuid.UUID) (*MeetingDetail, error)
	Create(ctx context.Context, in MeetingMinuteInsert) (*MeetingMinute, error)
	Update(ctx context.Context, id uuid.UUID, u MeetingMinuteUpdate) (*MeetingMinute, error)
	// Delete removes the record. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	// Statuses projects the status column of every record.
	Statuses(ctx context.Context) ([]Status, error)
}

// AttendeeRepository defines persistence for attendees.
type AttendeeRepository interface {
	List(ctx context.Context, filter AttendeeFilter) ([]Attendee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Attendee, error)
	Create(ctx context.Context, in AttendeeInsert) (*Attendee, error)
	Update(ctx context.Context, id uuid.UUID, u AttendeeUpdate) (*Attendee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepository defines persistence for meeting-attendee links.
type MembershipRepository interface {
	Add(ctx context.Context, meetingID, attendeeID uuid.UUID, status AttendanceStatus) (*MeetingAttendee, error)
	Remove(ctx context.Context, meetingID, attendeeID uuid.UUID) error
	UpdateStatus(ctx context.Context, meetingID, attendeeID uuid.UUID, status AttendanceStatus) (*MeetingAttendee, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]MeetingAttendeeWithAttendee, error)
}
