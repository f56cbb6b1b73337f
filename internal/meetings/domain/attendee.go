package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAttendeeEmptyName  = errors.New("attendee name cannot be empty")
	ErrAttendeeEmptyEmail = errors.New("attendee email cannot be empty")
)

// Attendee is a person who can be linked to meetings.
type Attendee struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       *string   `json:"role"`
	Department *string   `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AttendeeInsert is the payload for creating an attendee.
type AttendeeInsert struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// Normalize rejects a blank name or email. Values are stored as given.
func (in *AttendeeInsert) Normalize() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrAttendeeEmptyName
	}
	if strings.TrimSpace(in.Email) == "" {
		return ErrAttendeeEmptyEmail
	}
	return nil
}

// AttendeeUpdate is a partial update. Nil fields are left unchanged.
type AttendeeUpdate struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// Normalize rejects a supplied name or email that is blank.
func (u *AttendeeUpdate) Normalize() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return ErrAttendeeEmptyName
	}
	if u.Email != nil && strings.TrimSpace(*u.Email) == "" {
		return ErrAttendeeEmptyEmail
	}
	return nil
}

// AttendeeFilter narrows an attendee listing.
type AttendeeFilter struct {
	Search string
	Limit  int
	Offset int
}

// Validate rejects filters the store cannot express.
func (f AttendeeFilter) Validate() error {
	return ValidatePage(f.Limit, f.Offset)
}

// AttendeeWithStatus is an attendee flattened together with the attendance
// status of one meeting.
type AttendeeWithStatus struct {
	Attendee
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
}
