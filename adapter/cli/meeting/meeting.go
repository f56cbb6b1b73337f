package meeting

import "github.com/spf13/cobra"

// Cmd is the meeting command group.
var Cmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage meeting minutes",
	Long:  `Create, list, update, duplicate, export and delete meeting minutes.`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(duplicateCmd)
	Cmd.AddCommand(statsCmd)
	Cmd.AddCommand(exportCmd)
}
