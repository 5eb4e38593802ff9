package auth

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status and capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}
		creds, err := store.LoadCredentials()
		if err != nil {
			if errors.Is(err, sdk.ErrNoCredentials) {
				return gate.ErrLoginRequired
			}
			return err
		}

		pterm.DefaultSection.Println("Authentication Status")
		printTokenClaims(creds.AccessToken)

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		user, err := gate.Require(cmd.Context(), session)
		if err != nil {
			return err
		}

		pterm.Info.Printf("Logged in as %s (@%s), role %s\n", user.FullName, user.Username, user.Role)

		pterm.DefaultSection.Println("Capabilities")
		caps := sdk.CapabilitiesFor(user.Role)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FEATURE\tACCESS")
		for _, feature := range sdk.Features() {
			access := "denied"
			if caps.Has(feature) {
				access = "granted"
			}
			fmt.Fprintf(w, "%s\t%s\n", feature, access)
		}
		w.Flush()

		return nil
	},
}

// printTokenClaims decodes the stored token without verifying it; the server
// is the only verifier, this is purely informational display.
func printTokenClaims(accessToken string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		pterm.Warning.Println("Stored token is not inspectable locally")
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			pterm.Warning.Printf("Token expired at %s\n", exp.Format(time.RFC1123))
		} else {
			pterm.Info.Printf("Token expires at %s\n", exp.Format(time.RFC1123))
		}
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		pterm.Info.Printf("Subject: %s\n", sub)
	}
}
