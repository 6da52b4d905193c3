package service

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/bridge"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
	"github.com/sparktechagency/phoenixx-cli/pkg/output"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
	"github.com/sparktechagency/phoenixx-cli/pkg/socket"
	"github.com/sparktechagency/phoenixx-cli/pkg/store"
)

type NotificationService struct{}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// List prints notifications with the unread count
func (s *NotificationService) List(page, limit int, unreadOnly bool) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	resp, err := api.GetNotifications(page, limit)
	if err != nil {
		formatter.PrintError("Failed to load notifications: %v", err)
		return err
	}

	st := store.New(creds.UserID)
	st.Notifications.SetNotifications(resp.Notifications)

	notifications := st.Notifications.Notifications()
	if unreadOnly {
		filtered := notifications[:0:0]
		for _, n := range notifications {
			if !n.Read {
				filtered = append(filtered, n)
			}
		}
		notifications = filtered
	}

	if len(notifications) == 0 {
		formatter.PrintInfo("No notifications")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("notifications", notifications)
	}

	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s  %s (%s)\n", marker, n.Type, n.CreatedAt.Format("Jan 2 15:04"), n.Message, n.ID)
	}
	fmt.Printf("\n%d unread\n", st.Notifications.UnreadCount())
	return nil
}

// notificationWatchRefetch builds the refetch hook the live view
// registers under the notification tag.
func notificationWatchRefetch(st *store.Store, fetch func() (*api.NotificationListResponse, error)) func() {
	return func() {
		resp, err := fetch()
		if err != nil {
			logger.Debug("Notification refetch failed", "error", err)
			return
		}
		st.Notifications.SetNotifications(resp.Notifications)
	}
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(notificationID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.MarkNotificationRead(notificationID); err != nil {
		formatter.PrintError("Failed to mark notification read: %v", err)
		return err
	}
	formatter.PrintSuccess("Notification marked as read")
	return nil
}

// MarkAllRead marks every notification as read
func (s *NotificationService) MarkAllRead() error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.MarkAllNotificationsRead(); err != nil {
		formatter.PrintError("Failed to mark notifications read: %v", err)
		return err
	}
	formatter.PrintSuccess("All notifications marked as read")
	return nil
}

// Delete removes one notification
func (s *NotificationService) Delete(notificationID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.DeleteNotification(notificationID); err != nil {
		formatter.PrintError("Failed to delete notification: %v", err)
		return err
	}
	formatter.PrintSuccess("Notification deleted")
	return nil
}

// Clear removes all notifications after confirmation
func (s *NotificationService) Clear(force bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete all notifications?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteAllNotifications(); err != nil {
		formatter.PrintError("Failed to clear notifications: %v", err)
		return err
	}
	formatter.PrintSuccess("Notifications cleared")
	return nil
}

// Watch streams notifications live until interrupted
func (s *NotificationService) Watch() error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	st := store.New(creds.UserID)

	resp, err := api.GetNotifications(1, 20)
	if err != nil {
		formatter.PrintError("Failed to load notifications: %v", err)
		return err
	}
	st.Notifications.SetNotifications(resp.Notifications)

	sess := socket.NewSession(creds.UserID, socket.ConfigFromSettings())
	br := bridge.New(st)
	br.OnChange = func(event string) {
		if event != bridge.EventNotification {
			return
		}
		notifications := st.Notifications.Notifications()
		if len(notifications) == 0 {
			return
		}
		n := notifications[0]
		fmt.Printf("[%s] %s  %s\n", n.Type, n.CreatedAt.Format("15:04"), n.Message)
	}

	// Read/clear commands invalidate the notification tag; refetch so
	// the unread count shown on exit stays honest.
	unsub := api.Subscribe(notificationWatchRefetch(st, func() (*api.NotificationListResponse, error) {
		return api.GetNotifications(1, 20)
	}), api.TagNotification)
	defer unsub()

	if err := sess.Connect(); err != nil {
		formatter.PrintError("Failed to connect: %v", err)
		return err
	}
	br.Attach(sess)
	defer func() {
		br.Detach()
		sess.Close()
	}()

	formatter.PrintInfo("Watching for notifications (Ctrl+C to stop)... %d unread", st.Notifications.UnreadCount())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Printf("\n%d unread\n", st.Notifications.UnreadCount())
	return nil
}
