package auth

import (
	"fmt"
	"os"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	registerUsername string
	registerPassword string
	registerRole     string
	registerFullName string
	registerEmail    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Creates a new account on the campus server with one of the four roles:
admin, teacher, student or parent. Registering does not log the new account
in; follow up with 'campusctl auth login'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		password := registerPassword
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

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		user, err := session.Client().Register(cmd.Context(), sdk.RegisterInput{
			Username: registerUsername,
			Password: password,
			Role:     sdk.Role(registerRole),
			FullName: registerFullName,
			Email:    registerEmail,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		pterm.Success.Printf("Account created: %s (@%s), role %s\n", user.FullName, user.Username, user.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username for the new account")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerRole, "role", "", "Role: admin, teacher, student or parent")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Full display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (optional)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("role")
	registerCmd.MarkFlagRequired("full-name")
}
