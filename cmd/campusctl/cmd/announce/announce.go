package announce

import (
	"github.com/spf13/cobra"
)

// AnnounceCmd groups the announcement commands.
var AnnounceCmd = &cobra.Command{
	Use:   "announce",
	Short: "Read and post announcements",
}

func init() {
	AnnounceCmd.AddCommand(listCmd)
	AnnounceCmd.AddCommand(postCmd)
}
