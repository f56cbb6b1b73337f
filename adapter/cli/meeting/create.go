package meeting

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var (
	createDate     string
	createContent  string
	createFile     string
	createLocation string
	createStatus   string
	createTags     string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Record new meeting minutes",
	Long: `Create meeting minutes. The content is markdown, given inline or
read from a file ("-" reads stdin).

Examples:
  minutes meeting create "Sprint Review" --date 2024-01-31
  minutes meeting create "Board Meeting" --date "2024-02-01 14:00" --file notes.md --tags board,q1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		date, err := cli.ParseDate(createDate)
		if err != nil {
			return err
		}

		content := createContent
		if createFile != "" {
			if content, err = readContent(cmd, createFile); err != nil {
				return err
			}
		}

		in := domain.MeetingMinuteInsert{
			Title:       args[0],
			Content:     content,
			MeetingDate: date,
			Location:    cli.OptionalString(createLocation),
			Status:      domain.Status(createStatus),
			Tags:        cli.SplitTags(createTags),
		}

		res := app.Meetings.Create(cmd.Context(), in)
		return cli.Render(cmd, res, func(w io.Writer, m *domain.MeetingMinute) {
			fmt.Fprintf(w, "Created meeting minutes: %s\n", m.ID)
		})
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDate, "date", "d", "", "meeting date (YYYY-MM-DD or RFC 3339)")
	createCmd.Flags().StringVar(&createContent, "content", "", "markdown content")
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "read markdown content from a file")
	createCmd.Flags().StringVar(&createLocation, "location", "", "where the meeting took place")
	createCmd.Flags().StringVar(&createStatus, "status", "", "status (draft, published, archived)")
	createCmd.Flags().StringVar(&createTags, "tags", "", "comma separated tags")
	_ = createCmd.MarkFlagRequired("date")
}
