package store

import (
	"fmt"
	"testing"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

func notifFixture(id string, read bool) api.Notification {
	return api.Notification{
		ID:      id,
		Type:    api.NotificationComment,
		Message: "someone commented",
		Read:    read,
	}
}

// TestUnreadCountMatchesFilter checks the unread count against a manual
// count of unread entries after a random-ish mix of operations
func TestUnreadCountMatchesFilter(t *testing.T) {
	ns := NewNotificationState()

	ns.SetNotifications([]api.Notification{
		notifFixture("n1", false),
		notifFixture("n2", true),
		notifFixture("n3", false),
	})
	ns.Add(notifFixture("n4", false))
	ns.MarkRead("n1")
	ns.Remove("n3")
	ns.Add(notifFixture("n5", false))
	ns.MarkRead("n5")

	manual := 0
	for _, n := range ns.Notifications() {
		if !n.Read {
			manual++
		}
	}

	if got := ns.UnreadCount(); got != manual {
		t.Errorf("UnreadCount() = %d, manual filter = %d", got, manual)
	}
}

// TestAddPrepends puts the newest notification first
func TestAddPrepends(t *testing.T) {
	ns := NewNotificationState()
	ns.Add(notifFixture("n1", false))
	ns.Add(notifFixture("n2", false))

	list := ns.Notifications()
	if len(list) != 2 || list[0].ID != "n2" {
		t.Errorf("expected n2 first, got %+v", list)
	}
}

// TestAddReplacesDuplicate keeps one entry per id
func TestAddReplacesDuplicate(t *testing.T) {
	ns := NewNotificationState()
	ns.Add(notifFixture("n1", false))

	updated := notifFixture("n1", true)
	updated.Message = "updated"
	ns.Add(updated)

	list := ns.Notifications()
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Message != "updated" || !list[0].Read {
		t.Error("duplicate add did not replace the entry")
	}
}

// TestMarkRead flips one entry
func TestMarkRead(t *testing.T) {
	ns := NewNotificationState()
	ns.SetNotifications([]api.Notification{notifFixture("n1", false), notifFixture("n2", false)})

	ns.MarkRead("n1")

	if ns.UnreadCount() != 1 {
		t.Errorf("UnreadCount() = %d, want 1", ns.UnreadCount())
	}
}

// TestMarkAllRead drops the unread count to zero
func TestMarkAllRead(t *testing.T) {
	ns := NewNotificationState()
	var notifs []api.Notification
	for i := 0; i < 5; i++ {
		notifs = append(notifs, notifFixture(fmt.Sprintf("n%d", i), false))
	}
	ns.SetNotifications(notifs)

	ns.MarkAllRead()

	if ns.UnreadCount() != 0 {
		t.Errorf("UnreadCount() = %d, want 0", ns.UnreadCount())
	}
	if ns.Len() != 5 {
		t.Errorf("Len() = %d, want 5", ns.Len())
	}
}

// TestRemoveAndClear
func TestRemoveAndClear(t *testing.T) {
	ns := NewNotificationState()
	ns.SetNotifications([]api.Notification{notifFixture("n1", false), notifFixture("n2", true)})

	ns.Remove("n1")
	if ns.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ns.Len())
	}

	ns.Clear()
	if ns.Len() != 0 || ns.UnreadCount() != 0 {
		t.Error("Clear left entries behind")
	}
}
