package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for the current session",
	Long: `Renders the dashboard: the navigation of features your role grants,
the overview counters, and recent announcements. Sections outside your
role's capability set are not shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		user, err := gate.Require(cmd.Context(), session)
		if err != nil {
			return err
		}

		// Resolved from the role on every render; never cached.
		caps := sdk.CapabilitiesFor(user.Role)

		pterm.DefaultSection.Printf("Campus Dashboard: %s (%s)\n", user.FullName, user.Role)

		names := make([]string, 0, len(caps))
		for _, feature := range caps.List() {
			names = append(names, string(feature))
		}
		pterm.Info.Printf("Available sections: %s\n", strings.Join(names, ", "))

		client := session.Client()

		if caps.Has(sdk.FeatureOverview) {
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load overview: %w", err)
			}
			pterm.DefaultSection.Println("Overview")
			keys := make([]string, 0, len(stats))
			for k := range stats {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, k := range keys {
				fmt.Fprintf(w, "%s\t%d\n", k, stats[k])
			}
			w.Flush()
		}

		if caps.Has(sdk.FeatureCommunication) {
			announcements, err := client.ListAnnouncements(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load announcements: %w", err)
			}
			pterm.DefaultSection.Println("Announcements")
			if len(announcements) == 0 {
				fmt.Println("No announcements")
			}
			limit := min(len(announcements), 5)
			for _, a := range announcements[:limit] {
				fmt.Printf("- %s: %s (%s)\n", a.Title, a.Content, a.Author)
			}
		}

		return nil
	},
}
