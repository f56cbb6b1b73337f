package app

import (
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/meetings/infrastructure/persistence"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
)

// Repositories groups the entity repositories that share one connection.
type Repositories struct {
	Meetings    domain.MeetingRepository
	Attendees   domain.AttendeeRepository
	Memberships domain.MembershipRepository
}

// NewRepositories creates the repositories for conn. The queries are
// written once and rebound by the connection, so every driver shares them.
func NewRepositories(conn database.Connection) *Repositories {
	return &Repositories{
		Meetings:    persistence.NewMeetingRepository(conn),
		Attendees:   persistence.NewAttendeeRepository(conn),
		Memberships: persistence.NewMembershipRepository(conn),
	}
}
