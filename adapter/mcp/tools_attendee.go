package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
)

type attendeeListInput struct {
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type attendeeIDInput struct {
	AttendeeID string `json:"attendee_id" jsonschema:"required"`
}

type attendeeCreateInput struct {
	Name       string  `json:"name" jsonschema:"required"`
	Email      string  `json:"email" jsonschema:"required"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

type attendeeUpdateInput struct {
	AttendeeID string  `json:"attendee_id" jsonschema:"required"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

func registerAttendeeTools(srv *mcp.Server, h handlers) {
	srv.Tool("attendee.list").
		Description("List attendees by name. Search matches name or email, case-insensitively.").
		Handler(h.attendeeList)

	srv.Tool("attendee.get").
		Description("Get an attendee").
		Handler(h.attendeeGet)

	srv.Tool("attendee.create").
		Description("Add an attendee").
		Handler(h.attendeeCreate)

	srv.Tool("attendee.update").
		Description("Update the given fields of an attendee").
		Handler(h.attendeeUpdate)

	srv.Tool("attendee.delete").
		Description("Delete an attendee and their attendance records").
		Handler(h.attendeeDelete)
}

func (h handlers) attendeeList(ctx context.Context, input attendeeListInput) (application.Result[[]domain.Attendee], error) {
	return h.deps.Attendees.List(ctx, domain.AttendeeFilter{
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}), nil
}

func (h handlers) attendeeGet(ctx context.Context, input attendeeIDInput) (application.Result[*domain.Attendee], error) {
	id, err := parseUUID("attendee_id", input.AttendeeID)
	if err != nil {
		return invalid[*domain.Attendee](err), nil
	}
	return h.deps.Attendees.GetByID(ctx, id), nil
}

func (h handlers) attendeeCreate(ctx context.Context, input attendeeCreateInput) (application.Result[*domain.Attendee], error) {
	return h.deps.Attendees.Create(ctx, domain.AttendeeInsert{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
	}), nil
}

func (h handlers) attendeeUpdate(ctx context.Context, input attendeeUpdateInput) (application.Result[*domain.Attendee], error) {
	id, err := parseUUID("attendee_id", input.AttendeeID)
	if err != nil {
		return invalid[*domain.Attendee](err), nil
	}
	return h.deps.Attendees.Update(ctx, id, domain.AttendeeUpdate{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
	}), nil
}

func (h handlers) attendeeDelete(ctx context.Context, input attendeeIDInput) (application.Result[application.Void], error) {
	id, err := parseUUID("attendee_id", input.AttendeeID)
	if err != nil {
		return invalid[application.Void](err), nil
	}
	return h.deps.Attendees.Delete(ctx, id), nil
}
