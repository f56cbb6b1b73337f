package application

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
)

// MeetingService exposes meeting records through result envelopes.
type MeetingService struct {
	repo domain.MeetingRepository
	runner
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(repo domain.MeetingRepository, deps Dependencies) *MeetingService {
	return &MeetingService{repo: repo, runner: newRunner(domain.EntityMeeting, deps)}
}

// List returns meetings newest first, narrowed by the filter.
func (s *MeetingService) List(ctx context.Context, filter domain.MeetingFilter) Result[[]domain.MeetingMinute] {
	return run(ctx, s.runner, "list", func(ctx context.Context) ([]domain.MeetingMinute, error) {
		if err := filter.Validate(); err != nil {
			return nil, err
		}
		return s.repo.List(ctx, filter)
	})
}

// GetByID returns a meeting with its attendees flattened in.
func (s *MeetingService) GetByID(ctx context.Context, id uuid.UUID) Result[*domain.MeetingDetail] {
	return run(ctx, s.runner, "get", func(ctx context.Context) (*domain.MeetingDetail, error) {
		return s.repo.FindDetail(ctx, id)
	})
}

// Create stores a new meeting.
func (s *MeetingService) Create(ctx context.Context, in domain.MeetingMinuteInsert) Result[*domain.MeetingMinute] {
	return run(ctx, s.runner, "create", func(ctx context.Context) (*domain.MeetingMinute, error) {
		if err := in.Normalize(); err != nil {
			return nil, err
		}
		m, err := s.repo.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityMeeting, domain.ActionCreated, m.ID, m)
		return m, nil
	})
}

// Update applies a partial update and returns the full row.
func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, u domain.MeetingMinuteUpdate) Result[*domain.MeetingMinute] {
	return run(ctx, s.runner, "update", func(ctx context.Context) (*domain.MeetingMinute, error) {
		if err := u.Normalize(); err != nil {
			return nil, err
		}
		m, err := s.repo.Update(ctx, id, u)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityMeeting, domain.ActionUpdated, m.ID, m)
		return m, nil
	})
}

// Delete removes a meeting. Deleting a missing id succeeds.
func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) Result[Void] {
	return run(ctx, s.runner, "delete", func(ctx context.Context) (Void, error) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityMeeting, domain.ActionDeleted, id, nil)
		return nil, nil
	})
}

// Duplicate reads a meeting and inserts a draft copy of it. The read and
// the insert are separate requests.
func (s *MeetingService) Duplicate(ctx context.Context, id uuid.UUID) Result[*domain.MeetingMinute] {
	return run(ctx, s.runner, "duplicate", func(ctx context.Context) (*domain.MeetingMinute, error) {
		src, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		m, err := s.repo.Create(ctx, domain.DuplicateOf(*src))
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityMeeting, domain.ActionDuplicated, m.ID, m)
		return m, nil
	})
}

// Stats counts meetings by status.
func (s *MeetingService) Stats(ctx context.Context) Result[domain.Stats] {
	return run(ctx, s.runner, "stats", func(ctx context.Context) (domain.Stats, error) {
		statuses, err := s.repo.Statuses(ctx)
		if err != nil {
			return domain.Stats{}, err
		}
		return domain.CountStatuses(statuses), nil
	})
}
