package meeting

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [meeting-id]",
	Short: "Copy meeting minutes as a new draft",
	Long: `Copy meeting minutes into a new draft titled "<title> (Copy)".
Attendance records are not copied.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID("meeting", args[0])
		if err != nil {
			return err
		}

		res := app.Meetings.Duplicate(cmd.Context(), id)
		return cli.Render(cmd, res, func(w io.Writer, m *domain.MeetingMinute) {
			fmt.Fprintf(w, "Created %q: %s\n", m.Title, m.ID)
		})
	},
}
