package grades

import (
	"github.com/spf13/cobra"
)

// GradesCmd groups the grade recording and listing commands.
var GradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "View and record exam grades",
}

func init() {
	GradesCmd.AddCommand(listCmd)
	GradesCmd.AddCommand(addCmd)
}
