package attendee

import (
	"fmt"
	"io"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listLimit  int
	listOffset int

	createEmail      string
	createRole       string
	createDepartment string

	updateName       string
	updateEmail      string
	updateRole       string
	updateDepartment string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendees by name",
	Long: `List attendees ordered by name.

Examples:
  minutes attendee list
  minutes attendee list --search acme.io`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res := app.Attendees.List(cmd.Context(), domain.AttendeeFilter{
			Search: listSearch,
			Limit:  listLimit,
			Offset: listOffset,
		})
		return cli.Render(cmd, res, func(w io.Writer, attendees []domain.Attendee) {
			if len(attendees) == 0 {
				fmt.Fprintln(w, "No attendees found.")
				return
			}
			fmt.Fprintf(w, "Attendees (%d):\n", len(attendees))
			for _, a := range attendees {
				fmt.Fprintf(w, "  %s <%s>\n", a.Name, a.Email)
				fmt.Fprintf(w, "    ID: %s\n", a.ID)
				if a.Role != nil || a.Department != nil {
					fmt.Fprintf(w, "    Role: %s, Department: %s\n", cli.Deref(a.Role), cli.Deref(a.Department))
				}
			}
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [attendee-id]",
	Short: "Show an attendee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID("attendee", args[0])
		if err != nil {
			return err
		}

		res := app.Attendees.GetByID(cmd.Context(), id)
		return cli.Render(cmd, res, func(w io.Writer, a *domain.Attendee) {
			fmt.Fprintf(w, "%s\n", a.Name)
			fmt.Fprintf(w, "  ID: %s\n", a.ID)
			fmt.Fprintf(w, "  Email: %s\n", a.Email)
			fmt.Fprintf(w, "  Role: %s\n", cli.Deref(a.Role))
			fmt.Fprintf(w, "  Department: %s\n", cli.Deref(a.Department))
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add an attendee",
	Long: `Add an attendee.

Examples:
  minutes attendee create "Maria Lopez" --email maria@acme.io --role Scribe`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		res := app.Attendees.Create(cmd.Context(), domain.AttendeeInsert{
			Name:       args[0],
			Email:      createEmail,
			Role:       cli.OptionalString(createRole),
			Department: cli.OptionalString(createDepartment),
		})
		return cli.Render(cmd, res, func(w io.Writer, a *domain.Attendee) {
			fmt.Fprintf(w, "Created attendee: %s\n", a.ID)
		})
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [attendee-id]",
	Short: "Update an attendee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID("attendee", args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		var u domain.AttendeeUpdate
		if flags.Changed("name") {
			u.Name = &updateName
		}
		if flags.Changed("email") {
			u.Email = &updateEmail
		}
		if flags.Changed("role") {
			u.Role = &updateRole
		}
		if flags.Changed("department") {
			u.Department = &updateDepartment
		}

		res := app.Attendees.Update(cmd.Context(), id, u)
		return cli.Render(cmd, res, func(w io.Writer, a *domain.Attendee) {
			fmt.Fprintln(w, "Attendee updated successfully.")
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [attendee-id]",
	Short: "Delete an attendee",
	Long:  `Delete an attendee and their attendance records.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		id, err := cli.ParseID("attendee", args[0])
		if err != nil {
			return err
		}

		res := app.Attendees.Delete(cmd.Context(), id)
		return cli.Render(cmd, res, func(w io.Writer, _ application.Void) {
			fmt.Fprintf(w, "Deleted attendee: %s\n", id)
		})
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "case-insensitive match on name or email")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "results to skip (pages by 10 without --limit)")

	createCmd.Flags().StringVarP(&createEmail, "email", "e", "", "email address")
	createCmd.Flags().StringVar(&createRole, "role", "", "role in meetings")
	createCmd.Flags().StringVar(&createDepartment, "department", "", "department")
	_ = createCmd.MarkFlagRequired("email")

	updateCmd.Flags().StringVar(&updateName, "name", "", "name")
	updateCmd.Flags().StringVarP(&updateEmail, "email", "e", "", "email address")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "role in meetings")
	updateCmd.Flags().StringVar(&updateDepartment, "department", "", "department")
}
