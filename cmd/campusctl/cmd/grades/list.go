package grades

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/spf13/cobra"
)

var listStudentID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List exam grades",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureGrades); err != nil {
			return err
		}

		records, err := session.Client().ListGrades(cmd.Context(), sdk.GradeFilter{
			StudentID: listStudentID,
		})
		if err != nil {
			return fmt.Errorf("failed to list grades: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STUDENT\tSUBJECT\tEXAM\tMARKS\tDATE")
		for _, g := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f/%.1f\t%s\n",
				g.StudentName, g.Subject, g.ExamType, g.Marks, g.MaxMarks, g.Date)
		}
		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStudentID, "student", "", "Filter by student id")
}
