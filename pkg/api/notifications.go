package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetNotifications retrieves notifications with pagination
func GetNotifications(page, limit int) (*NotificationListResponse, error) {
	logger.Debug("Fetching notifications", "page", page)

	var response NotificationListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&response).
		Get("/api/v1/notifications")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// MarkNotificationRead marks a single notification as read
func MarkNotificationRead(notificationID string) error {
	logger.Debug("Marking notification as read", "notification_id", notificationID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/notifications/%s/read", notificationID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagNotification)
	return nil
}

// MarkAllNotificationsRead marks all notifications as read
func MarkAllNotificationsRead() error {
	logger.Debug("Marking all notifications as read")

	resp, err := client.GetClient().
		R().
		Patch("/api/v1/notifications/read-all")

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagNotification)
	return nil
}

// DeleteNotification deletes a notification
func DeleteNotification(notificationID string) error {
	logger.Debug("Deleting notification", "notification_id", notificationID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/notifications/%s", notificationID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagNotification)
	return nil
}

// DeleteAllNotifications clears the notification list
func DeleteAllNotifications() error {
	logger.Debug("Deleting all notifications")

	resp, err := client.GetClient().
		R().
		Delete("/api/v1/notifications")

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagNotification)
	return nil
}
