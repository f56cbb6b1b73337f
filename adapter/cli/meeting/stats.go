package meeting

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count meeting minutes by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res := app.Meetings.Stats(cmd.Context())
		return cli.Render(cmd, res, func(w io.Writer, s domain.Stats) {
			fmt.Fprintf(w, "Total:     %d\n", s.Total)
			fmt.Fprintf(w, "Published: %d\n", s.Published)
			fmt.Fprintf(w, "Draft:     %d\n", s.Draft)
			fmt.Fprintf(w, "Archived:  %d\n", s.Archived)
		})
	},
}
