package meeting

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [meeting-id]",
	Short: "Show a meeting with its attendees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID("meeting", args[0])
		if err != nil {
			return err
		}

		res := app.Meetings.GetByID(cmd.Context(), id)
		return cli.Render(cmd, res, printDetail)
	},
}

func printDetail(w io.Writer, m *domain.MeetingDetail) {
	fmt.Fprintf(w, "%s\n", m.Title)
	fmt.Fprintf(w, "  ID: %s\n", m.ID)
	fmt.Fprintf(w, "  Date: %s\n", cli.FormatDate(m.MeetingDate))
	fmt.Fprintf(w, "  Status: %s\n", m.Status)
	fmt.Fprintf(w, "  Location: %s\n", cli.Deref(m.Location))
	if len(m.Tags) > 0 {
		fmt.Fprintf(w, "  Tags: %s\n", strings.Join(m.Tags, ", "))
	}

	if len(m.Attendees) == 0 {
		fmt.Fprintln(w, "  Attendees: none")
	} else {
		fmt.Fprintf(w, "  Attendees (%d):\n", len(m.Attendees))
		for _, a := range m.Attendees {
			fmt.Fprintf(w, "    %s <%s> [%s]\n", a.Name, a.Email, a.AttendanceStatus)
		}
	}

	if strings.TrimSpace(m.Content) != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, m.Content)
	}
}
