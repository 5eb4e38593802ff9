package students

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <student-id>",
	Short: "Show one student record",
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

		student, err := session.Client().GetStudent(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get student: %w", err)
		}

		fmt.Printf("ID:        %s\n", student.ID)
		fmt.Printf("Name:      %s\n", student.FullName)
		fmt.Printf("Roll:      %s\n", student.RollNumber)
		fmt.Printf("Class:     %s/%s\n", student.ClassName, student.Section)
		if student.DateOfBirth != "" {
			fmt.Printf("Born:      %s\n", student.DateOfBirth)
		}
		if student.Phone != "" {
			fmt.Printf("Phone:     %s\n", student.Phone)
		}
		if student.Address != "" {
			fmt.Printf("Address:   %s\n", student.Address)
		}
		if student.ParentID != "" {
			fmt.Printf("Parent ID: %s\n", student.ParentID)
		}

		return nil
	},
}
