package application

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
)

// AttendeeService exposes attendees through result envelopes.
type AttendeeService struct {
	repo domain.AttendeeRepository
	runner
}

// NewAttendeeService creates a new AttendeeService.
func NewAttendeeService(repo domain.AttendeeRepository, deps Dependencies) *AttendeeService {
	return &AttendeeService{repo: repo, runner: newRunner(domain.EntityAttendee, deps)}
}

// List returns attendees ordered by name.
func (s *AttendeeService) List(ctx context.Context, filter domain.AttendeeFilter) Result[[]domain.Attendee] {
	return run(ctx, s.runner, "list", func(ctx context.Context) ([]domain.Attendee, error) {
		if err := filter.Validate(); err != nil {
			return nil, err
		}
		return s.repo.List(ctx, filter)
	})
}

// Search matches attendees by name or email.
func (s *AttendeeService) Search(ctx context.Context, query string) Result[[]domain.Attendee] {
	return s.List(ctx, domain.AttendeeFilter{Search: query})
}

// GetByID returns a single attendee.
func (s *AttendeeService) GetByID(ctx context.Context, id uuid.UUID) Result[*domain.Attendee] {
	return run(ctx, s.runner, "get", func(ctx context.Context) (*domain.Attendee, error) {
		return s.repo.FindByID(ctx, id)
	})
}

// Create stores a new attendee.
func (s *AttendeeService) Create(ctx context.Context, in domain.AttendeeInsert) Result[*domain.Attendee] {
	return run(ctx, s.runner, "create", func(ctx context.Context) (*domain.Attendee, error) {
		if err := in.Normalize(); err != nil {
			return nil, err
		}
		a, err := s.repo.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendee, domain.ActionCreated, a.ID, a)
		return a, nil
	})
}

// Update applies a partial update and returns the full row.
func (s *AttendeeService) Update(ctx context.Context, id uuid.UUID, u domain.AttendeeUpdate) Result[*domain.Attendee] {
	return run(ctx, s.runner, "update", func(ctx context.Context) (*domain.Attendee, error) {
		if err := u.Normalize(); err != nil {
			return nil, err
		}
		a, err := s.repo.Update(ctx, id, u)
		if err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendee, domain.ActionUpdated, a.ID, a)
		return a, nil
	})
}

// Delete removes an attendee. Deleting a missing id succeeds.
func (s *AttendeeService) Delete(ctx context.Context, id uuid.UUID) Result[Void] {
	return run(ctx, s.runner, "delete", func(ctx context.Context) (Void, error) {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		s.notify(ctx, domain.EntityAttendee, domain.ActionDeleted, id, nil)
		return nil, nil
	})
}
