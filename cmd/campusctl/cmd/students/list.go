package students

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all student records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureStudents); err != nil {
			return err
		}

		records, err := session.Client().ListStudents(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list students: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLL\tNAME\tCLASS\tSECTION")
		for _, s := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.RollNumber, s.FullName, s.ClassName, s.Section)
		}
		w.Flush()

		return nil
	},
}
