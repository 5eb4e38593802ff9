package announce

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureCommunication); err != nil {
			return err
		}

		notices, err := session.Client().ListAnnouncements(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list announcements: %w", err)
		}
		if len(notices) == 0 {
			pterm.Info.Println("No announcements")
			return nil
		}

		for _, n := range notices {
			header := fmt.Sprintf("%s (%s, %s)", n.Title, n.Author, n.CreatedAt.Format("2006-01-02"))
			if n.TargetRole != "" {
				header += fmt.Sprintf(" [%ss only]", n.TargetRole)
			}
			pterm.DefaultSection.Println(header)
			fmt.Println(n.Content)
		}

		return nil
	},
}
