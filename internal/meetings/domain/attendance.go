package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAttendanceStatus = errors.New("invalid attendance status")

// AttendanceStatus records whether an attendee was at a meeting.
type AttendanceStatus string

const (
	AttendanceInvited  AttendanceStatus = "invited"
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceAbsent   AttendanceStatus = "absent"
)

// IsValid checks if the attendance status is supported.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceInvited, AttendanceAttended, AttendanceAbsent:
		return true
	default:
		return false
	}
}

// OrDefault returns s, or invited when s is empty.
func (s AttendanceStatus) OrDefault() AttendanceStatus {
	if s == "" {
		return AttendanceInvited
	}
	return s
}

// MeetingAttendee is the link row between a meeting and an attendee.
type MeetingAttendee struct {
	ID               uuid.UUID        `json:"id"`
	MeetingID        uuid.UUID        `json:"meeting_id"`
	AttendeeID       uuid.UUID        `json:"attendee_id"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// MeetingAttendeeWithAttendee keeps the link fields and nests the attendee.
type MeetingAttendeeWithAttendee struct {
	MeetingAttendee
	Attendee *Attendee `json:"attendee"`
}
