package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
)

type meetingListInput struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

type meetingIDInput struct {
	MeetingID string `json:"meeting_id" jsonschema:"required"`
}

type meetingCreateInput struct {
	Title       string   `json:"title" jsonschema:"required"`
	MeetingDate string   `json:"meeting_date" jsonschema:"required"`
	Content     string   `json:"content,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Status      string   `json:"status,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedBy   string   `json:"created_by,omitempty"`
}

type meetingUpdateInput struct {
	MeetingID   string   `json:"meeting_id" jsonschema:"required"`
	Title       *string  `json:"title,omitempty"`
	MeetingDate *string  `json:"meeting_date,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func registerMeetingTools(srv *mcp.Server, h handlers) {
	srv.Tool("meeting.list").
		Description("List meeting minutes, newest first. Filters by status and a case-insensitive search over title and content.").
		Handler(h.meetingList)

	srv.Tool("meeting.get").
		Description("Get meeting minutes with their attendees and attendance status").
		Handler(h.meetingGet)

	srv.Tool("meeting.create").
		Description("Record new meeting minutes. Status defaults to draft.").
		Handler(h.meetingCreate)

	srv.Tool("meeting.update").
		Description("Update the given fields of meeting minutes").
		Handler(h.meetingUpdate)

	srv.Tool("meeting.delete").
		Description("Delete meeting minutes and their attendance records").
		Handler(h.meetingDelete)

	srv.Tool("meeting.duplicate").
		Description("Copy meeting minutes into a new draft titled \"<title> (Copy)\"").
		Handler(h.meetingDuplicate)

	srv.Tool("meeting.stats").
		Description("Count meeting minutes by status").
		Handler(h.meetingStats)
}

func (h handlers) meetingList(ctx context.Context, input meetingListInput) (application.Result[[]domain.MeetingMinute], error) {
	return h.deps.Meetings.List(ctx, domain.MeetingFilter{
		Status: domain.Status(input.Status),
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}), nil
}

func (h handlers) meetingGet(ctx context.Context, input meetingIDInput) (application.Result[*domain.MeetingDetail], error) {
	id, err := parseUUID("meeting_id", input.MeetingID)
	if err != nil {
		return invalid[*domain.MeetingDetail](err), nil
	}
	return h.deps.Meetings.GetByID(ctx, id), nil
}

func (h handlers) meetingCreate(ctx context.Context, input meetingCreateInput) (application.Result[*domain.MeetingMinute], error) {
	date, err := parseDate(input.MeetingDate)
	if err != nil {
		return invalid[*domain.MeetingMinute](err), nil
	}

	in := domain.MeetingMinuteInsert{
		Title:       input.Title,
		Content:     input.Content,
		MeetingDate: date,
		Location:    input.Location,
		Status:      domain.Status(input.Status),
		Tags:        input.Tags,
	}
	if input.CreatedBy != "" {
		createdBy, err := parseUUID("created_by", input.CreatedBy)
		if err != nil {
			return invalid[*domain.MeetingMinute](err), nil
		}
		in.CreatedBy = &createdBy
	}
	return h.deps.Meetings.Create(ctx, in), nil
}

func (h handlers) meetingUpdate(ctx context.Context, input meetingUpdateInput) (application.Result[*domain.MeetingMinute], error) {
	id, err := parseUUID("meeting_id", input.MeetingID)
	if err != nil {
		return invalid[*domain.MeetingMinute](err), nil
	}

	u := domain.MeetingMinuteUpdate{
		Title:    input.Title,
		Content:  input.Content,
		Location: input.Location,
	}
	if input.MeetingDate != nil {
		date, err := parseDate(*input.MeetingDate)
		if err != nil {
			return invalid[*domain.MeetingMinute](err), nil
		}
		u.MeetingDate = &date
	}
	if input.Status != nil {
		status := domain.Status(*input.Status)
		u.Status = &status
	}
	if input.Tags != nil {
		u.Tags = &input.Tags
	}
	return h.deps.Meetings.Update(ctx, id, u), nil
}

func (h handlers) meetingDelete(ctx context.Context, input meetingIDInput) (application.Result[application.Void], error) {
	id, err := parseUUID("meeting_id", input.MeetingID)
	if err != nil {
		return invalid[application.Void](err), nil
	}
	return h.deps.Meetings.Delete(ctx, id), nil
}

func (h handlers) meetingDuplicate(ctx context.Context, input meetingIDInput) (application.Result[*domain.MeetingMinute], error) {
	id, err := parseUUID("meeting_id", input.MeetingID)
	if err != nil {
		return invalid[*domain.MeetingMinute](err), nil
	}
	return h.deps.Meetings.Duplicate(ctx, id), nil
}

func (h handlers) meetingStats(ctx context.Context, _ struct{}) (application.Result[domain.Stats], error) {
	return h.deps.Meetings.Stats(ctx), nil
}
