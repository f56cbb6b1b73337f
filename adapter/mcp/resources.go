package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
)

const recentMeetingsLimit = 20

// RegisterResources registers read-only views over the store.
func RegisterResources(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return fmt.Errorf("server is required")
	}
	if err := deps.validate(); err != nil {
		return err
	}

	srv.Resource("minutes://meetings/recent").
		Name("Recent Meeting Minutes").
		Description("The most recent meeting minutes, newest first").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, params map[string]string) (*mcp.ResourceContent, error) {
			res := deps.Meetings.List(ctx, domain.MeetingFilter{Limit: recentMeetingsLimit})
			return jsonResource(uri, res)
		})

	srv.Resource("minutes://meetings/drafts").
		Name("Draft Meeting Minutes").
		Description("Meeting minutes that have not been published").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, params map[string]string) (*mcp.ResourceContent, error) {
			res := deps.Meetings.List(ctx, domain.MeetingFilter{Status: domain.StatusDraft})
			return jsonResource(uri, res)
		})

	srv.Resource("minutes://meetings/stats").
		Name("Meeting Statistics").
		Description("Meeting minutes counted by status").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, params map[string]string) (*mcp.ResourceContent, error) {
			return jsonResource(uri, deps.Meetings.Stats(ctx))
		})

	srv.Resource("minutes://attendees").
		Name("Attendees").
		Description("All attendees ordered by name").
		MimeType("application/json").
		Handler(func(ctx context.Context, uri string, params map[string]string) (*mcp.ResourceContent, error) {
			return jsonResource(uri, deps.Attendees.List(ctx, domain.AttendeeFilter{}))
		})

	return nil
}

func jsonResource(uri string, v any) (*mcp.ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.ResourceContent{
		URI:      uri,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}
