package attendance

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Cmd is the attendance command group.
var Cmd = &cobra.Command{
	Use:   "attendance",
	Short: "Manage who attended a meeting",
	Long: `Link attendees to meetings and record whether they were invited,
attended or were absent.`,
}

var addStatus string

var addCmd = &cobra.Command{
	Use:   "add [meeting-id] [attendee-id]",
	Short: "Add an attendee to a meeting",
	Long: `Add an attendee to a meeting. The status defaults to invited.

Examples:
  minutes attendance add <meeting-id> <attendee-id>
  minutes attendance add <meeting-id> <attendee-id> --status attended`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, meetingID, attendeeID, err := resolve(args)
		if err != nil {
			return err
		}

		res := app.Memberships.AddToMeeting(cmd.Context(), meetingID, attendeeID, domain.AttendanceStatus(addStatus))
		return cli.Render(cmd, res, func(w io.Writer, link *domain.MeetingAttendee) {
			fmt.Fprintf(w, "Added attendee as %s.\n", link.AttendanceStatus)
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [meeting-id] [attendee-id]",
	Short: "Remove an attendee from a meeting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, meetingID, attendeeID, err := resolve(args)
		if err != nil {
			return err
		}

		res := app.Memberships.RemoveFromMeeting(cmd.Context(), meetingID, attendeeID)
		return cli.Render(cmd, res, func(w io.Writer, _ application.Void) {
			fmt.Fprintln(w, "Removed attendee from meeting.")
		})
	},
}

var setCmd = &cobra.Command{
	Use:   "set [meeting-id] [attendee-id] [status]",
	Short: "Record an attendance status",
	Long: `Change the attendance status of a linked attendee.

Examples:
  minutes attendance set <meeting-id> <attendee-id> absent`,
	Args:      cobra.ExactArgs(3),
	ValidArgs: []string{string(domain.AttendanceInvited), string(domain.AttendanceAttended), string(domain.AttendanceAbsent)},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, meetingID, attendeeID, err := resolve(args[:2])
		if err != nil {
			return err
		}

		res := app.Memberships.UpdateAttendanceStatus(cmd.Context(), meetingID, attendeeID, domain.AttendanceStatus(args[2]))
		return cli.Render(cmd, res, func(w io.Writer, link *domain.MeetingAttendee) {
			fmt.Fprintf(w, "Attendance set to %s.\n", link.AttendanceStatus)
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list [meeting-id]",
	Short: "List the attendance records of a meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		meetingID, err := cli.ParseID("meeting", args[0])
		if err != nil {
			return err
		}

		res := app.Memberships.GetByMeetingID(cmd.Context(), meetingID)
		return cli.Render(cmd, res, func(w io.Writer, links []domain.MeetingAttendeeWithAttendee) {
			if len(links) == 0 {
				fmt.Fprintln(w, "No attendees recorded.")
				return
			}
			fmt.Fprintf(w, "Attendance (%d):\n", len(links))
			for _, link := range links {
				name, email := "(deleted attendee)", ""
				if link.Attendee != nil {
					name, email = link.Attendee.Name, " <"+link.Attendee.Email+">"
				}
				fmt.Fprintf(w, "  %-9s %s%s\n", link.AttendanceStatus, name, email)
			}
		})
	},
}

func resolve(args []string) (*cli.App, uuid.UUID, uuid.UUID, error) {
	app, err := cli.RequireApp()
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, err
	}
	meetingID, err := cli.ParseID("meeting", args[0])
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, err
	}
	attendeeID, err := cli.ParseID("attendee", args[1])
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, err
	}
	return app, meetingID, attendeeID, nil
}

func init() {
	addCmd.Flags().StringVar(&addStatus, "status", "", "attendance status (invited, attended, absent)")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
}
