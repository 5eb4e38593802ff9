package students

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <student-id>",
	Short: "Delete a student record",
	Long: `Deletes a student record. The server additionally restricts deletion to
the admin role.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureStudents); err != nil {
			return err
		}

		if err := session.Client().DeleteStudent(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}

		pterm.Success.Printf("Student deleted: %s\n", args[0])
		return nil
	},
}
