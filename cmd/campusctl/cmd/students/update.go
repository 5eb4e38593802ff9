package students

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var updateInput sdk.StudentInput

var updateCmd = &cobra.Command{
	Use:   "update <student-id>",
	Short: "Replace a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureStudents); err != nil {
			return err
		}

		student, err := session.Client().UpdateStudent(cmd.Context(), args[0], updateInput)
		if err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}

		pterm.Success.Printf("Student updated: %s (id %s)\n", student.FullName, student.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.FullName, "name", "", "Full name")
	updateCmd.Flags().StringVar(&updateInput.RollNumber, "roll", "", "Roll number")
	updateCmd.Flags().StringVar(&updateInput.ClassName, "class", "", "Class name")
	updateCmd.Flags().StringVar(&updateInput.Section, "section", "", "Section")
	updateCmd.Flags().StringVar(&updateInput.ParentID, "parent-id", "", "Parent account id (optional)")
	updateCmd.Flags().StringVar(&updateInput.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD (optional)")
	updateCmd.Flags().StringVar(&updateInput.Address, "address", "", "Address (optional)")
	updateCmd.Flags().StringVar(&updateInput.Phone, "phone", "", "Phone number (optional)")
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("roll")
	updateCmd.MarkFlagRequired("class")
	updateCmd.MarkFlagRequired("section")
}
