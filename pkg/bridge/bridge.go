// Package bridge wires socket events into the client store. Each handler
// decodes its event payload into a typed struct, validates it at the
// boundary, and applies it as a store mutation. A payload that fails to
// decode or validate is dropped and logged; it never reaches the store.
package bridge

import (
	"fmt"
	"time"

	json "github.com/json-iterator/go"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
	"github.com/sparktechagency/phoenixx-cli/pkg/socket"
	"github.com/sparktechagency/phoenixx-cli/pkg/store"
)

// Event name prefixes. The server scopes every event to a user:
// "newMessage::<userId>".
const (
	EventNewMessage       = "newMessage"
	EventMessageReacted   = "messageReacted"
	EventMessagePinned    = "messagePinned"
	EventMessageDeleted   = "messageDeleted"
	EventNewChat          = "newChat"
	EventChatDeleted      = "chatDeleted"
	EventChatMuted        = "chatMuted"
	EventChatBlocked      = "chatBlocked"
	EventChatMarkedAsRead = "chatMarkedAsRead"
	EventNotification     = "notification"
)

// EventName scopes an event prefix to a user id
func EventName(prefix, userID string) string {
	return fmt.Sprintf("%s::%s", prefix, userID)
}

// Typed payloads per event

type reactionEvent struct {
	MessageID string           `json:"messageId"`
	UserID    string           `json:"userId"`
	Type      api.ReactionType `json:"reactionType"`
	Timestamp time.Time        `json:"timestamp"`
}

type pinEvent struct {
	MessageID string     `json:"messageId"`
	IsPinned  bool       `json:"isPinned"`
	PinnedBy  string     `json:"pinnedBy,omitempty"`
	PinnedAt  *time.Time `json:"pinnedAt,omitempty"`
}

type deleteEvent struct {
	MessageID string `json:"messageId"`
	ChatID    string `json:"chatId,omitempty"`
}

type chatEvent struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId,omitempty"`
}

// Bridge subscribes a fixed set of user-scoped events on a session and
// translates them into store mutations.
type Bridge struct {
	store  *store.Store
	userID string
	unsubs []func()

	// OnChange, when set, runs after every applied event. Interactive
	// views use it to re-render.
	OnChange func(event string)
}

// New creates a bridge for the given store. The store's user id decides
// the event namespace.
func New(st *store.Store) *Bridge {
	return &Bridge{
		store:  st,
		userID: st.UserID(),
	}
}

// Attach registers all event handlers on the session. Call Detach to
// remove them.
func (b *Bridge) Attach(sess *socket.Session) {
	sub := func(prefix string, fn func(json.RawMessage)) {
		b.unsubs = append(b.unsubs, sess.On(EventName(prefix, b.userID), fn))
	}

	sub(EventNewMessage, b.handleNewMessage)
	sub(EventMessageReacted, b.handleMessageReacted)
	sub(EventMessagePinned, b.handleMessagePinned)
	sub(EventMessageDeleted, b.handleMessageDeleted)
	sub(EventNewChat, b.handleNewChat)
	sub(EventChatDeleted, b.handleChatDeleted)
	sub(EventChatMuted, b.handleChatMuted)
	sub(EventChatBlocked, b.handleChatBlocked)
	sub(EventChatMarkedAsRead, b.handleChatMarkedAsRead)
	sub(EventNotification, b.handleNotification)
}

// Detach removes every handler registered by Attach
func (b *Bridge) Detach() {
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.unsubs = nil
}

func (b *Bridge) changed(event string) {
	if b.OnChange != nil {
		b.OnChange(event)
	}
}

// drop logs a rejected payload. Socket payloads are never trusted: a
// shape mismatch is dropped here instead of surfacing as a store panic.
func drop(event string, err error) {
	logger.Warn("Dropping malformed socket event", "event", event, "error", err)
}

func (b *Bridge) handleNewMessage(data json.RawMessage) {
	var msg api.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		drop(EventNewMessage, err)
		return
	}
	if msg.ID == "" || msg.ChatID == "" {
		drop(EventNewMessage, fmt.Errorf("missing message or chat id"))
		return
	}

	// A message can arrive before its sender is populated. Fabricate a
	// placeholder sender rather than rejecting the message.
	if msg.Sender.ID == "" {
		msg.Sender = api.Sender{ID: "unknown", Name: "Unknown"}
	}

	if b.store.Messages.ChatID() == msg.ChatID {
		b.store.Messages.UpsertMessage(msg)
	}
	b.store.Chats.UpdateLastMessage(msg.ChatID, msg)
	b.changed(EventNewMessage)
}

func (b *Bridge) handleMessageReacted(data json.RawMessage) {
	var ev reactionEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventMessageReacted, err)
		return
	}
	if ev.MessageID == "" || ev.UserID == "" || ev.Type == "" {
		drop(EventMessageReacted, fmt.Errorf("missing message id, user id or reaction type"))
		return
	}

	at := ev.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	b.store.Messages.UpdateReaction(ev.MessageID, ev.UserID, ev.Type, at)
	b.changed(EventMessageReacted)
}

func (b *Bridge) handleMessagePinned(data json.RawMessage) {
	var ev pinEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventMessagePinned, err)
		return
	}
	if ev.MessageID == "" {
		drop(EventMessagePinned, fmt.Errorf("missing message id"))
		return
	}

	at := time.Now()
	if ev.PinnedAt != nil {
		at = *ev.PinnedAt
	}
	b.store.Messages.UpdatePin(ev.MessageID, ev.IsPinned, ev.PinnedBy, at)
	b.changed(EventMessagePinned)
}

func (b *Bridge) handleMessageDeleted(data json.RawMessage) {
	var ev deleteEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventMessageDeleted, err)
		return
	}
	if ev.MessageID == "" {
		drop(EventMessageDeleted, fmt.Errorf("missing message id"))
		return
	}

	b.store.Messages.SoftDeleteMessage(ev.MessageID)
	b.changed(EventMessageDeleted)
}

func (b *Bridge) handleNewChat(data json.RawMessage) {
	var chat api.Chat
	if err := json.Unmarshal(data, &chat); err != nil {
		drop(EventNewChat, err)
		return
	}
	if chat.ID == "" {
		drop(EventNewChat, fmt.Errorf("missing chat id"))
		return
	}

	b.store.Chats.UpsertChat(chat)
	b.changed(EventNewChat)
}

func (b *Bridge) handleChatDeleted(data json.RawMessage) {
	var ev chatEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventChatDeleted, err)
		return
	}
	if ev.ChatID == "" {
		drop(EventChatDeleted, fmt.Errorf("missing chat id"))
		return
	}

	b.store.Chats.DeleteChat(ev.ChatID)
	if b.store.Messages.ChatID() == ev.ChatID {
		b.store.Messages.Reset()
	}
	b.changed(EventChatDeleted)
}

func (b *Bridge) handleChatMuted(data json.RawMessage) {
	var ev chatEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventChatMuted, err)
		return
	}
	if ev.ChatID == "" || ev.UserID == "" {
		drop(EventChatMuted, fmt.Errorf("missing chat or user id"))
		return
	}

	b.store.Chats.ToggleMute(ev.ChatID, ev.UserID)
	b.changed(EventChatMuted)
}

func (b *Bridge) handleChatBlocked(data json.RawMessage) {
	var ev chatEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventChatBlocked, err)
		return
	}
	if ev.ChatID == "" || ev.UserID == "" {
		drop(EventChatBlocked, fmt.Errorf("missing chat or user id"))
		return
	}

	b.store.Chats.ToggleBlock(ev.ChatID, ev.UserID)
	b.changed(EventChatBlocked)
}

func (b *Bridge) handleChatMarkedAsRead(data json.RawMessage) {
	var ev chatEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		drop(EventChatMarkedAsRead, err)
		return
	}
	if ev.ChatID == "" {
		drop(EventChatMarkedAsRead, fmt.Errorf("missing chat id"))
		return
	}

	b.store.Chats.MarkChatRead(ev.ChatID)
	b.changed(EventChatMarkedAsRead)
}

func (b *Bridge) handleNotification(data json.RawMessage) {
	var n api.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		drop(EventNotification, err)
		return
	}
	if n.ID == "" || n.Type == "" {
		drop(EventNotification, fmt.Errorf("missing notification id or type"))
		return
	}

	b.store.Notifications.Add(n)
	b.changed(EventNotification)
}
