package attendee

import "github.com/spf13/cobra"

// Cmd is the attendee command group.
var Cmd = &cobra.Command{
	Use:   "attendee",
	Short: "Manage attendees",
	Long:  `Create, search, update and delete the people who attend meetings.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
