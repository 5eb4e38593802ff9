package students

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var createInput sdk.StudentInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a student record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureStudents); err != nil {
			return err
		}

		student, err := session.Client().CreateStudent(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}

		pterm.Success.Printf("Student created: %s (id %s)\n", student.FullName, student.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.FullName, "name", "", "Full name")
	createCmd.Flags().StringVar(&createInput.RollNumber, "roll", "", "Roll number")
	createCmd.Flags().StringVar(&createInput.ClassName, "class", "", "Class name")
	createCmd.Flags().StringVar(&createInput.Section, "section", "", "Section")
	createCmd.Flags().StringVar(&createInput.ParentID, "parent-id", "", "Parent account id (optional)")
	createCmd.Flags().StringVar(&createInput.DateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD (optional)")
	createCmd.Flags().StringVar(&createInput.Address, "address", "", "Address (optional)")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Phone number (optional)")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("roll")
	createCmd.MarkFlagRequired("class")
	createCmd.MarkFlagRequired("section")
}
