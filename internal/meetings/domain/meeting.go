package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMeetingEmptyTitle    = errors.New("meeting title cannot be empty")
	ErrMeetingInvalidStatus = errors.New("invalid meeting status")
	ErrMeetingMissingDate   = errors.New("meeting date is required")
)

// Status is the publication state of a meeting record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// MeetingMinute is a persisted meeting record.
type MeetingMinute struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	MeetingDate time.Time  `json:"meeting_date"`
	Location    *string    `json:"location"`
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedBy   *uuid.UUID `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MeetingMinuteInsert is the payload for creating a meeting record.
// Identity and timestamps are assigned by the store.
type MeetingMinuteInsert struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	MeetingDate time.Time  `json:"meeting_date"`
	Location    *string    `json:"location,omitempty"`
	Status      Status     `json:"status,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
}

// Normalize applies the default status and validates the payload. A title
// of only whitespace is rejected; otherwise the title is kept as given.
func (in *MeetingMinuteInsert) Normalize() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrMeetingEmptyTitle
	}
	if in.MeetingDate.IsZero() {
		return ErrMeetingMissingDate
	}
	if in.Status == "" {
		in.Status = StatusDraft
	}
	if !in.Status.IsValid() {
		return ErrMeetingInvalidStatus
	}
	return nil
}

// MeetingMinuteUpdate is a partial update. Nil fields are left unchanged.
type MeetingMinuteUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	MeetingDate *time.Time `json:"meeting_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

// Normalize validates the supplied fields.
func (u *MeetingMinuteUpdate) Normalize() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return ErrMeetingEmptyTitle
	}
	if u.MeetingDate != nil && u.MeetingDate.IsZero() {
		return ErrMeetingMissingDate
	}
	if u.Status != nil && !u.Status.IsValid() {
		return ErrMeetingInvalidStatus
	}
	return nil
}

// MeetingFilter narrows a meeting listing. Zero values mean "no constraint".
type MeetingFilter struct {
	Status Status
	Search string
	Limit  int
	Offset int
}

// Validate rejects filters the store cannot express.
func (f MeetingFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return ErrMeetingInvalidStatus
	}
	return ValidatePage(f.Limit, f.Offset)
}

// DuplicateOf builds the insert payload for a copy of m: the title gets a
// " (Copy)" suffix and the status is reset to draft.
func DuplicateOf(m MeetingMinute) MeetingMinuteInsert {
	return MeetingMinuteInsert{
		Title:       m.Title + " (Copy)",
		Content:     m.Content,
		MeetingDate: m.MeetingDate,
		Location:    m.Location,
		Status:      StatusDraft,
		Tags:        m.Tags,
		CreatedBy:   m.CreatedBy,
	}
}

// MeetingDetail is a meeting with its attendees flattened in.
type MeetingDetail struct {
	MeetingMinute
	Attendees []AttendeeWithStatus `json:"attendees"`
}
