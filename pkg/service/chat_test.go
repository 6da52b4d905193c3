package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/store"
)

// TestLastMessagePreviewTruncatesByRunes never splits a multi-byte
// character at the truncation point
func TestLastMessagePreviewTruncatesByRunes(t *testing.T) {
	c := api.Chat{LastMessage: &api.Message{Text: strings.Repeat("é", 40)}}

	preview := lastMessagePreview(c)

	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid UTF-8: %q", preview)
	}
	if preview != strings.Repeat("é", 33)+"..." {
		t.Errorf("preview = %q, want 33 runes plus ellipsis", preview)
	}
}

// TestLastMessagePreviewShortText passes short text through unchanged
func TestLastMessagePreviewShortText(t *testing.T) {
	c := api.Chat{LastMessage: &api.Message{Text: "hello"}}
	if got := lastMessagePreview(c); got != "hello" {
		t.Errorf("preview = %q, want hello", got)
	}
}

// TestChatWatchRefetchReloadsStore runs the chat-tag refetch hook on
// invalidation and replaces the watch store's chat list
func TestChatWatchRefetchReloadsStore(t *testing.T) {
	st := store.New("u1")
	st.Chats.SetChats([]api.Chat{{ID: "c1", UnreadCount: 2}})

	fetched := &api.ChatListResponse{Chats: []api.Chat{
		{ID: "c1", UnreadCount: 0},
		{ID: "c2", UnreadCount: 1},
	}}
	unsub := api.Subscribe(chatWatchRefetch(st, func() (*api.ChatListResponse, error) {
		return fetched, nil
	}), api.TagChat)
	defer unsub()

	api.Invalidate(api.TagChat)

	if st.Chats.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Chats.Len())
	}
	if st.Chats.UnreadTotal() != 1 {
		t.Errorf("UnreadTotal = %d, want 1", st.Chats.UnreadTotal())
	}
}

// TestNotificationWatchRefetchReloadsStore does the same for the
// notification tag
func TestNotificationWatchRefetchReloadsStore(t *testing.T) {
	st := store.New("u1")
	st.Notifications.SetNotifications([]api.Notification{{ID: "n1", Read: false}})

	fetched := &api.NotificationListResponse{Notifications: []api.Notification{
		{ID: "n1", Read: true},
		{ID: "n2", Read: true},
	}}
	unsub := api.Subscribe(notificationWatchRefetch(st, func() (*api.NotificationListResponse, error) {
		return fetched, nil
	}), api.TagNotification)
	defer unsub()

	api.Invalidate(api.TagNotification)

	if st.Notifications.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Notifications.Len())
	}
	if st.Notifications.UnreadCount() != 0 {
		t.Errorf("UnreadCount = %d, want 0", st.Notifications.UnreadCount())
	}
}
