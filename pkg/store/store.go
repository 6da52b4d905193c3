// Package store holds the client-side state for chats, messages and
// notifications. Both the REST fetch path and the socket push path mutate
// the same slices, so every slice is guarded by its own mutex and all
// operations are idempotent upserts keyed by id.
package store

// Store aggregates the per-domain state slices for one logged-in user.
type Store struct {
	userID string

	Chats         *ChatState
	Messages      *MessageState
	Notifications *NotificationState
}

// New creates an empty store bound to the given user id. The user id is
// what mute/block toggles and unread accounting are keyed off.
func New(userID string) *Store {
	return &Store{
		userID:        userID,
		Chats:         NewChatState(),
		Messages:      NewMessageState(),
		Notifications: NewNotificationState(),
	}
}

// UserID returns the id of the user this store belongs to
func (s *Store) UserID() string {
	return s.userID
}
