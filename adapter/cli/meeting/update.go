package meeting

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/security"
	"github.com/spf13/cobra"
)

var (
	updateTitle    string
	updateDate     string
	updateContent  string
	updateFile     string
	updateLocation string
	updateStatus   string
	updateTags     string
)

var updateCmd = &cobra.Command{
	Use:   "update [meeting-id]",
	Short: "Update meeting minutes",
	Long: `Update the given fields of meeting minutes. Fields that are not
passed keep their stored value.

Examples:
  minutes meeting update abc123 --status published
  minutes meeting update abc123 --title "Sprint 12 Review" --tags sprint,review`,
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

		flags := cmd.Flags()
		var u domain.MeetingMinuteUpdate
		if flags.Changed("title") {
			u.Title = &updateTitle
		}
		if flags.Changed("date") {
			date, err := cli.ParseDate(updateDate)
			if err != nil {
				return err
			}
			u.MeetingDate = &date
		}
		if flags.Changed("content") {
			u.Content = &updateContent
		}
		if flags.Changed("file") {
			content, err := readContent(cmd, updateFile)
			if err != nil {
				return err
			}
			u.Content = &content
		}
		if flags.Changed("location") {
			u.Location = &updateLocation
		}
		if flags.Changed("status") {
			status := domain.Status(updateStatus)
			u.Status = &status
		}
		if flags.Changed("tags") {
			tags := cli.SplitTags(updateTags)
			u.Tags = &tags
		}

		res := app.Meetings.Update(cmd.Context(), id, u)
		return cli.Render(cmd, res, func(w io.Writer, m *domain.MeetingMinute) {
			fmt.Fprintln(w, "Meeting minutes updated successfully.")
		})
	},
}

// readContent reads markdown from path, or stdin for "-".
func readContent(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		content, err := security.ReadContent(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, nil
	}
	content, err := security.ReadContentFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("content file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return content, nil
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "meeting title")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "meeting date (YYYY-MM-DD or RFC 3339)")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "markdown content")
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "read markdown content from a file")
	updateCmd.Flags().StringVar(&updateLocation, "location", "", "where the meeting took place")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "status (draft, published, archived)")
	updateCmd.Flags().StringVar(&updateTags, "tags", "", "comma separated tags (replaces the stored tags)")
}
