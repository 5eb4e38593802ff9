package announce

import (
	"fmt"

	"github.com/campusworks/campus/cmd/campusctl/internal/config"
	"github.com/campusworks/campus/cmd/campusctl/internal/gate"
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	postTitle      string
	postContent    string
	postTargetRole string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post an announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if _, err := gate.RequireFeature(cmd.Context(), session, sdk.FeatureCommunication); err != nil {
			return err
		}

		switch sdk.Role(postTargetRole) {
		case "", sdk.RoleAdmin, sdk.RoleTeacher, sdk.RoleStudent, sdk.RoleParent:
		default:
			return fmt.Errorf("unknown target role %q", postTargetRole)
		}

		n, err := session.Client().CreateAnnouncement(cmd.Context(), sdk.AnnouncementInput{
			Title:      postTitle,
			Content:    postContent,
			TargetRole: postTargetRole,
		})
		if err != nil {
			return fmt.Errorf("failed to post announcement: %w", err)
		}

		pterm.Success.Printfln("Posted announcement %q", n.Title)
		return nil
	},
}

func init() {
	postCmd.Flags().StringVar(&postTitle, "title", "", "Announcement title")
	postCmd.Flags().StringVar(&postContent, "content", "", "Announcement body")
	postCmd.Flags().StringVar(&postTargetRole, "target-role", "", "Restrict to one role (optional)")
	postCmd.MarkFlagRequired("title")
	postCmd.MarkFlagRequired("content")
}
