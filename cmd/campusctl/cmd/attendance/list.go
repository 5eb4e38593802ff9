package attendance

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	listStudentID string
	listDate      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureAttendance); err != nil {
			return err
		}

		records, err := session.Client().ListAttendance(cmd.Context(), sdk.AttendanceFilter{
			StudentID: listStudentID,
			Date:      listDate,
		})
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSTUDENT\tSTATUS\tSUBJECT")
		for _, rec := range records {
			subject := "-"
			if rec.Subject != "" {
				subject = rec.Subject
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Date, rec.StudentName, rec.Status, subject)
		}
		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStudentID, "student", "", "Filter by student id")
	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by date (YYYY-MM-DD)")
}
