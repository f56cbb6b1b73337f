package meeting

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/security"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [meeting-id]",
	Short: "Export meeting minutes as markdown",
	Long: `Export meeting minutes as a markdown document with a YAML front
matter block carrying the metadata and attendance.

Examples:
  minutes meeting export abc123              # Export to stdout
  minutes meeting export abc123 -o review.md # Export to file`,
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

		detail, err := app.Meetings.GetByID(cmd.Context(), id).Unwrap()
		if err != nil {
			return err
		}

		doc, err := Markdown(detail)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		if err := security.WriteFileAtomic(exportOutput, doc); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOutput)
		return nil
	},
}

type frontMatterAttendee struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Role   string `yaml:"role,omitempty"`
	Status string `yaml:"status"`
}

type frontMatter struct {
	ID        string                `yaml:"id"`
	Title     string                `yaml:"title"`
	Date      string                `yaml:"date"`
	Status    string                `yaml:"status"`
	Location  string                `yaml:"location,omitempty"`
	Tags      []string              `yaml:"tags,omitempty"`
	Attendees []frontMatterAttendee `yaml:"attendees,omitempty"`
	Updated   string                `yaml:"updated"`
}

// Markdown renders a meeting as front matter followed by its content.
func Markdown(m *domain.MeetingDetail) ([]byte, error) {
	fm := frontMatter{
		ID:       m.ID.String(),
		Title:    m.Title,
		Date:     m.MeetingDate.UTC().Format(time.RFC3339),
		Status:   string(m.Status),
		Location: derefOrEmpty(m.Location),
		Tags:     m.Tags,
		Updated:  m.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, a := range m.Attendees {
		fm.Attendees = append(fm.Attendees, frontMatterAttendee{
			Name:   a.Name,
			Email:  a.Email,
			Role:   derefOrEmpty(a.Role),
			Status: string(a.AttendanceStatus),
		})
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, "# ") {
		fmt.Fprintf(&buf, "# %s\n\n", m.Title)
	}
	if content != "" {
		buf.WriteString(content)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}
