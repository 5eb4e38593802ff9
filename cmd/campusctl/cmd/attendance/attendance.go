package attendance

import (
	"github.com/spf13/cobra"
)

// AttendanceCmd is the parent command for attendance operations.
var AttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "View and mark attendance",
}

func init() {
	AttendanceCmd.AddCommand(listCmd)
	AttendanceCmd.AddCommand(markCmd)
}
