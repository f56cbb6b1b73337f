package meeting

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var (
	listStatus string
	listSearch string
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List meeting minutes",
	Long: `List meeting minutes, newest meeting first.

Examples:
  minutes meeting list
  minutes meeting list --status published
  minutes meeting list --search roadmap --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		filter := domain.MeetingFilter{
			Status: domain.Status(listStatus),
			Search: listSearch,
			Limit:  listLimit,
			Offset: listOffset,
		}

		res := app.Meetings.List(cmd.Context(), filter)
		return cli.Render(cmd, res, func(w io.Writer, meetings []domain.MeetingMinute) {
			if len(meetings) == 0 {
				fmt.Fprintln(w, "No meeting minutes found. Create one with: minutes meeting create \"Title\" --date 2024-01-31")
				return
			}

			fmt.Fprintf(w, "Meeting minutes (%d):\n", len(meetings))
			for _, m := range meetings {
				fmt.Fprintf(w, "  %s\n", m.Title)
				fmt.Fprintf(w, "    ID: %s\n", m.ID)
				fmt.Fprintf(w, "    Date: %s\n", cli.FormatDate(m.MeetingDate))
				fmt.Fprintf(w, "    Status: %s\n", m.Status)
				if excerpt := Excerpt(m.Content, excerptLength); excerpt != "" {
					fmt.Fprintf(w, "    %s\n", excerpt)
				}
			}
		})
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (draft, published, archived)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "case-insensitive match on title or content")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "results to skip (pages by 10 without --limit)")
}
