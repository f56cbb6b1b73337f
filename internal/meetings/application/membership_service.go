package application

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
)

// MembershipService manages the links between meetings and attendees.
type MembershipService struct {
	repo domain.MembershipRepository
	runner
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(repo domain.MembershipRepository, deps Dependencies) *MembershipService {
	return &MembershipService{repo: repo, runner: newRunner(domain.EntityAttendance, deps)}
}

type linkKey struct {
	MeetingID  uuid.UUID `json:"meeting_id"`
	AttendeeID uuid.UUID `json:"attendee_id"`
}

// AddToMeeting links an attendee to a meeting. An empty status means invited.
func (s *MembershipService) AddToMeeting(ctx context.Context, meetingID, attendeeID uuid.UUID, status domain.AttendanceStatus) Result[*domain.MeetingAttendee] {
	return run(ctx, s.runner, "add", func(ctx context.Context) (*domain.MeetingAttendee, error) {
		status = status.OrDefault()
		if !status.IsValid() {
			return nil, domain.ErrInvalidAttendanceStatus
		}
		link, err := s.repo.Add(ctx, meetingID, attendeeID, status)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendance, domain.ActionAdded, link.MeetingID, link)
		return link, nil
	})
}

// RemoveFromMeeting deletes the link for the pair. A missing link succeeds.
func (s *MembershipService) RemoveFromMeeting(ctx context.Context, meetingID, attendeeID uuid.UUID) Result[Void] {
	return run(ctx, s.runner, "remove", func(ctx context.Context) (Void, error) {
		if err := s.repo.Remove(ctx, meetingID, attendeeID); err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendance, domain.ActionRemoved, meetingID,
			linkKey{MeetingID: meetingID, AttendeeID: attendeeID})
		return nil, nil
	})
}

// UpdateAttendanceStatus changes the status of an existing link.
func (s *MembershipService) UpdateAttendanceStatus(ctx context.Context, meetingID, attendeeID uuid.UUID, status domain.AttendanceStatus) Result[*domain.MeetingAttendee] {
	return run(ctx, s.runner, "set", func(ctx context.Context) (*domain.MeetingAttendee, error) {
		if !status.IsValid() {
			return nil, domain.ErrInvalidAttendanceStatus
		}
		link, err := s.repo.UpdateStatus(ctx, meetingID, attendeeID, status)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendance, domain.ActionUpdated, link.MeetingID, link)
		return link, nil
	})
}

// GetByMeetingID lists a meeting's links with the attendee nested in each.
// Unlike MeetingService.GetByID the link fields are kept.
func (s *MembershipService) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) Result[[]domain.MeetingAttendeeWithAttendee] {
	return run(ctx, s.runner, "list", func(ctx context.Context) ([]domain.MeetingAttendeeWithAttendee, error) {
		return s.repo.ListByMeeting(ctx, meetingID)
	})
}
