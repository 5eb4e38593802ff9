package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the campus server",
	Long: `Authenticates against the campus server with a username and password.

On success the issued access token is persisted under ~/.campus and attached
to every subsequent protected call until logout or server-side expiry.
Missing flags are prompted for interactively; the password prompt never
echoes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		username := loginUsername
		if username == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--username is required in non-interactive mode")
			}
			fmt.Print("Username: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		password := loginPassword
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(raw)
		}

		if _, err := session.Login(cmd.Context(), username, password); err != nil {
			// The session already surfaced the reason as a notification.
			return fmt.Errorf("login failed")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username to log in with")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}
