package attendance

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	markStudentID   string
	markStudentName string
	markDate        string
	markStatus      string
	markSubject     string
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark attendance for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureAttendance); err != nil {
			return err
		}

		status := sdk.AttendanceStatus(markStatus)
		switch status {
		case sdk.AttendancePresent, sdk.AttendanceAbsent, sdk.AttendanceLate:
		default:
			return fmt.Errorf("invalid status %q: must be present, absent or late", markStatus)
		}

		rec, err := session.Client().MarkAttendance(cmd.Context(), sdk.AttendanceInput{
			StudentID:   markStudentID,
			StudentName: markStudentName,
			Date:        markDate,
			Status:      status,
			Subject:     markSubject,
		})
		if err != nil {
			return fmt.Errorf("failed to mark attendance: %w", err)
		}

		pterm.Success.Printfln("Marked %s %s on %s", rec.StudentName, rec.Status, rec.Date)
		return nil
	},
}

func init() {
	markCmd.Flags().StringVar(&markStudentID, "student", "", "Student id")
	markCmd.Flags().StringVar(&markStudentName, "name", "", "Student name")
	markCmd.Flags().StringVar(&markDate, "date", "", "Date (YYYY-MM-DD)")
	markCmd.Flags().StringVar(&markStatus, "status", "present", "Status: present, absent or late")
	markCmd.Flags().StringVar(&markSubject, "subject", "", "Subject (optional)")
	markCmd.MarkFlagRequired("student")
	markCmd.MarkFlagRequired("name")
	markCmd.MarkFlagRequired("date")
}
