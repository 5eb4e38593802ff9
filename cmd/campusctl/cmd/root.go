package cmd

import (
	"fmt"
	"os"

	"github.com/campusworks/campus/cmd/campusctl/cmd/announce"
	"github.com/campusworks/campus/cmd/campusctl/cmd/attendance"
	"github.com/campusworks/campus/cmd/campusctl/cmd/auth"
	"github.com/campusworks/campus/cmd/campusctl/cmd/grades"
	"github.com/campusworks/campus/cmd/campusctl/cmd/students"
	"github.com/campusworks/campus/cmd/campusctl/internal/client"
	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/notify"
	"github.com/spf13/cobra"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Campus CLI - school administration client",
	Long: `campusctl is the command-line client for the campus school administration
API. It manages the login session and the student, attendance, grade and
announcement records your role has access to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Check for CAMPUS_NON_INTERACTIVE environment variable
		if os.Getenv("CAMPUS_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		resolved := config.ResolveServerURL(serverURL)
		cfg := &config.GlobalConfig{
			ServerURL:      resolved,
			NonInteractive: nonInteractive,
			Provider:       client.NewProvider(resolved, notify.PTerm{}),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Campus API server URL (default from CAMPUS_SERVER or ~/.campus/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via CAMPUS_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(students.StudentsCmd)
	rootCmd.AddCommand(attendance.AttendanceCmd)
	rootCmd.AddCommand(grades.GradesCmd)
	rootCmd.AddCommand(announce.AnnounceCmd)
}
