package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	reportPostID      string
	reportCommentID   string
	reportReason      string
	reportDescription string

	feedbackSubject string
	feedbackMessage string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a post or comment",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Report(reportPostID, reportCommentID, reportReason, reportDescription)
	},
}

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Send feedback to the Phoenixx team",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Feedback(feedbackSubject, feedbackMessage)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportPostID, "post", "", "Post id to report")
	reportCmd.Flags().StringVar(&reportCommentID, "comment", "", "Comment id to report")
	reportCmd.Flags().StringVar(&reportReason, "reason", "", "Report reason")
	reportCmd.Flags().StringVar(&reportDescription, "description", "", "Additional details")

	feedbackCmd.Flags().StringVar(&feedbackSubject, "subject", "", "Feedback subject")
	feedbackCmd.Flags().StringVar(&feedbackMessage, "message", "", "Feedback body")
}
