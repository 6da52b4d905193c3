package store

import (
	"sync"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

// NotificationState is the notification slice. The unread count is always
// the live count of unread entries in the list, never a separately
// tracked number.
type NotificationState struct {
	mu            sync.RWMutex
	notifications []api.Notification
}

// NewNotificationState creates an empty notification slice
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// SetNotifications replaces the list from a server fetch
func (ns *NotificationState) SetNotifications(notifications []api.Notification) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.notifications = make([]api.Notification, len(notifications))
	copy(ns.notifications, notifications)
}

// Notifications returns a copy of the list
func (ns *NotificationState) Notifications() []api.Notification {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make([]api.Notification, len(ns.notifications))
	copy(out, ns.notifications)
	return out
}

// Add prepends a pushed notification, replacing in place when the id is
// already known
func (ns *NotificationState) Add(n api.Notification) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i, existing := range ns.notifications {
		if existing.ID == n.ID {
			ns.notifications[i] = n
			return
		}
	}
	ns.notifications = append([]api.Notification{n}, ns.notifications...)
}

// MarkRead flags one notification as read
func (ns *NotificationState) MarkRead(notificationID string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i := range ns.notifications {
		if ns.notifications[i].ID == notificationID {
			ns.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every notification as read
func (ns *NotificationState) MarkAllRead() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i := range ns.notifications {
		ns.notifications[i].Read = true
	}
}

// Remove deletes one notification from the list
func (ns *NotificationState) Remove(notificationID string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for i, n := range ns.notifications {
		if n.ID == notificationID {
			ns.notifications = append(ns.notifications[:i], ns.notifications[i+1:]...)
			return
		}
	}
}

// Clear empties the list
func (ns *NotificationState) Clear() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.notifications = nil
}

// Len returns the number of notifications
func (ns *NotificationState) Len() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return len(ns.notifications)
}

// UnreadCount returns the live count of unread notifications
func (ns *NotificationState) UnreadCount() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	count := 0
	for _, n := range ns.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
