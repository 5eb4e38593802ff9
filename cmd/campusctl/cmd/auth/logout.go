package auth

import (
	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored credential",
	Long: `Clears the local session. Logout is purely local and idempotent: it
always succeeds, needs no server round-trip, and running it while already
logged out changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		// The wired notifier announces the logout when a credential was
		// actually cleared; an already-logged-out logout stays silent.
		return session.Logout()
	},
}
