package mcp

import (
	"errors"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
)

// ToolDependencies provides the services behind the MCP tools.
type ToolDependencies struct {
	Meetings    *application.MeetingService
	Attendees   *application.AttendeeService
	Memberships *application.MembershipService
	Health      *application.HealthService
}

func (d ToolDependencies) validate() error {
	switch {
	case d.Meetings == nil:
		return errors.New("meeting service is required")
	case d.Attendees == nil:
		return errors.New("attendee service is required")
	case d.Memberships == nil:
		return errors.New("membership service is required")
	case d.Health == nil:
		return errors.New("health service is required")
	}
	return nil
}

// RegisterTools registers one tool per service operation. Every tool
// returns the operation's result envelope unchanged.
func RegisterTools(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	if err := deps.validate(); err != nil {
		return err
	}

	h := handlers{deps: deps}
	registerMeetingTools(srv, h)
	registerAttendeeTools(srv, h)
	registerAttendanceTools(srv, h)
	registerStoreTools(srv, h)
	return nil
}

// handlers holds the tool implementations so they can be called directly.
type handlers struct {
	deps ToolDependencies
}
