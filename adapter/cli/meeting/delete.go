package meeting

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [meeting-id]",
	Short: "Delete meeting minutes",
	Long: `Delete meeting minutes. Their attendance records are removed with them.
Deleting minutes that no longer exist succeeds.`,
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

		res := app.Meetings.Delete(cmd.Context(), id)
		return cli.Render(cmd, res, func(w io.Writer, _ application.Void) {
			fmt.Fprintf(w, "Deleted meeting minutes: %s\n", id)
		})
	},
}
