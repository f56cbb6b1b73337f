package mcp

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
)

// RegisterPrompts registers prompts for common minute-taking workflows.
func RegisterPrompts(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return fmt.Errorf("server is required")
	}

	srv.Prompt("record_minutes").
		Description("Turn raw meeting notes into structured minutes and store them.").
		Argument("title", "Title of the meeting", true).
		Argument("meeting_date", "Date of the meeting (YYYY-MM-DD)", true).
		Argument("notes", "Raw notes taken during the meeting", false).
		Handler(func(ctx context.Context, args map[string]string) (*mcp.PromptResult, error) {
			title := args["title"]
			if title == "" {
				title = "[Please specify the meeting title]"
			}
			date := args["meeting_date"]
			if date == "" {
				date = "[Please specify the meeting date]"
			}
			notes := args["notes"]
			if notes == "" {
				notes = "(ask me for the notes)"
			}

			return &mcp.PromptResult{
				Description: "Record Meeting Minutes",
				Messages: []mcp.PromptMessage{
					{
						Role: string(mcp.RoleUser),
						Content: mcp.TextContent{
							Type: "text",
							Text: fmt.Sprintf(`Write up minutes for this meeting:

**Title:** %s
**Date:** %s

**Notes:**
%s

Structure the minutes in markdown with these sections:
- Summary
- Decisions
- Action items (owner, deliverable, due date)
- Open questions

Then store them with meeting.create as a draft. For every person
mentioned, find them with attendee.list (create them with
attendee.create if missing) and link them with attendance.add.`, title, date, notes),
						},
					},
				},
			}, nil
		})

	srv.Prompt("publish_review").
		Description("Review draft minutes before publishing them.").
		Handler(func(ctx context.Context, args map[string]string) (*mcp.PromptResult, error) {
			return &mcp.PromptResult{
				Description: "Draft Review",
				Messages: []mcp.PromptMessage{
					{
						Role: string(mcp.RoleUser),
						Content: mcp.TextContent{
							Type: "text",
							Text: `Review my draft meeting minutes. Please:

1. Read the minutes://meetings/drafts resource
2. For each draft, load it with meeting.get and check that
   - decisions and action items are stated clearly
   - the attendance records are complete (attendance.list)
3. Suggest edits, and after I confirm, apply them with meeting.update
   and set status to published.`,
						},
					},
				},
			}, nil
		})

	return nil
}
