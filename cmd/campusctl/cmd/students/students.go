package students

import (
	"github.com/spf13/cobra"
)

// StudentsCmd is the parent command for student record operations.
// Every subcommand requires the students capability, which only the admin
// and teacher roles hold.
var StudentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage student records",
	Long:  `Commands for listing, inspecting and maintaining student enrollment records.`,
}

func init() {
	StudentsCmd.AddCommand(listCmd)
	StudentsCmd.AddCommand(getCmd)
	StudentsCmd.AddCommand(createCmd)
	StudentsCmd.AddCommand(updateCmd)
	StudentsCmd.AddCommand(deleteCmd)
}
