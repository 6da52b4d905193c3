package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	notifPage       int
	notifLimit      int
	notifUnreadOnly bool
	notifForce      bool
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "Manage notifications",
}

var notifListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.List(notifPage, notifLimit, notifUnreadOnly)
	},
}

var notifReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.MarkRead(args[0])
	},
}

var notifReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all notifications as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.MarkAllRead()
	},
}

var notifDeleteCmd = &cobra.Command{
	Use:   "delete <notification-id>",
	Short: "Delete a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.Delete(args[0])
	},
}

var notifClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.Clear(notifForce)
	},
}

var notifWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream notifications live",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService()
		return notifSvc.Watch()
	},
}

func init() {
	notifListCmd.Flags().IntVar(&notifPage, "page", 1, "Page number")
	notifListCmd.Flags().IntVar(&notifLimit, "limit", 20, "Notifications per page")
	notifListCmd.Flags().BoolVar(&notifUnreadOnly, "unread", false, "Show unread only")

	notifClearCmd.Flags().BoolVarP(&notifForce, "force", "f", false, "Skip confirmation")

	notificationsCmd.AddCommand(notifListCmd)
	notificationsCmd.AddCommand(notifReadCmd)
	notificationsCmd.AddCommand(notifReadAllCmd)
	notificationsCmd.AddCommand(notifDeleteCmd)
	notificationsCmd.AddCommand(notifClearCmd)
	notificationsCmd.AddCommand(notifWatchCmd)
}
