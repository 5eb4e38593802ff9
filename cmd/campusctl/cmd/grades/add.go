package grades

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	addStudentID   string
	addStudentName string
	addSubject     string
	addExamType    string
	addMarks       float64
	addMaxMarks    float64
	addDate        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an exam grade for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureGrades); err != nil {
			return err
		}

		if addMarks < 0 || addMaxMarks <= 0 || addMarks > addMaxMarks {
			return fmt.Errorf("invalid marks %.1f/%.1f", addMarks, addMaxMarks)
		}

		g, err := session.Client().AddGrade(cmd.Context(), sdk.GradeInput{
			StudentID:   addStudentID,
			StudentName: addStudentName,
			Subject:     addSubject,
			ExamType:    addExamType,
			Marks:       addMarks,
			MaxMarks:    addMaxMarks,
			Date:        addDate,
		})
		if err != nil {
			return fmt.Errorf("failed to add grade: %w", err)
		}

		pterm.Success.Printfln("Recorded %s %s for %s: %.1f/%.1f",
			g.Subject, g.ExamType, g.StudentName, g.Marks, g.MaxMarks)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addStudentID, "student", "", "Student id")
	addCmd.Flags().StringVar(&addStudentName, "name", "", "Student name")
	addCmd.Flags().StringVar(&addSubject, "subject", "", "Subject")
	addCmd.Flags().StringVar(&addExamType, "exam", "", "Exam type (e.g. midterm, final)")
	addCmd.Flags().Float64Var(&addMarks, "marks", 0, "Marks obtained")
	addCmd.Flags().Float64Var(&addMaxMarks, "max", 100, "Maximum marks")
	addCmd.Flags().StringVar(&addDate, "date", "", "Exam date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("student")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("subject")
	addCmd.MarkFlagRequired("exam")
	addCmd.MarkFlagRequired("marks")
}
