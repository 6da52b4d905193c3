package store

import (
	"sync"
	"time"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

// ChatState is the chat slice: the conversation list ordered by newest
// activity first. The global unread count is always derived as the sum of
// per-chat unread counts, never tracked as a separate scalar, so the
// incremental operations below cannot drift it.
type ChatState struct {
	mu    sync.RWMutex
	chats []api.Chat
}

// NewChatState creates an empty chat slice
func NewChatState() *ChatState {
	return &ChatState{}
}

// SetChats replaces the whole list from an authoritative server fetch.
// This is the periodic correction for any local drift from the
// incremental operations.
func (cs *ChatState) SetChats(chats []api.Chat) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.chats = make([]api.Chat, len(chats))
	copy(cs.chats, chats)
}

// Chats returns a copy of the chat list, newest activity first
func (cs *ChatState) Chats() []api.Chat {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]api.Chat, len(cs.chats))
	copy(out, cs.chats)
	return out
}

// Len returns the number of chats
func (cs *ChatState) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chats)
}

// Get returns the chat with the given id
func (cs *ChatState) Get(chatID string) (api.Chat, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	for _, c := range cs.chats {
		if c.ID == chatID {
			return c, true
		}
	}
	return api.Chat{}, false
}

// UnreadTotal returns the global unread count, derived as the sum of
// per-chat unread counts
func (cs *ChatState) UnreadTotal() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	total := 0
	for _, c := range cs.chats {
		total += c.UnreadCount
	}
	return total
}

// UpsertChat replaces the chat in place when its id is already known,
// otherwise prepends it
func (cs *ChatState) UpsertChat(chat api.Chat) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i, c := range cs.chats {
		if c.ID == chat.ID {
			cs.chats[i] = chat
			return
		}
	}
	cs.chats = append([]api.Chat{chat}, cs.chats...)
}

// MarkChatRead zeroes the chat's unread count and flips its last message
// to read. Applying it twice is a no-op the second time.
func (cs *ChatState) MarkChatRead(chatID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.chats {
		if cs.chats[i].ID == chatID {
			cs.chats[i].UnreadCount = 0
			if cs.chats[i].LastMessage != nil {
				cs.chats[i].LastMessage.Read = true
			}
			return
		}
	}
}

// DeleteChat removes a chat from the local list
func (cs *ChatState) DeleteChat(chatID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i, c := range cs.chats {
		if c.ID == chatID {
			cs.chats = append(cs.chats[:i], cs.chats[i+1:]...)
			return
		}
	}
}

// UpdateLastMessage records the newest message of a conversation and bumps
// the conversation to the top of the list. When the chat id is unknown a
// minimal chat entry is synthesized, so a push for a brand-new
// conversation still lands somewhere visible.
//
// Unread accounting: an unread message increments the chat's unread
// count; a read message clears the previously-unread last message,
// floored at zero.
func (cs *ChatState) UpdateLastMessage(chatID string, msg api.Message) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	idx := -1
	for i, c := range cs.chats {
		if c.ID == chatID {
			idx = i
			break
		}
	}

	if idx == -1 {
		chat := api.Chat{
			ID:          chatID,
			LastMessage: &msg,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if !msg.Read {
			chat.UnreadCount = 1
		}
		cs.chats = append([]api.Chat{chat}, cs.chats...)
		return
	}

	chat := cs.chats[idx]
	prev := chat.LastMessage
	chat.LastMessage = &msg
	chat.UpdatedAt = time.Now()

	if !msg.Read {
		chat.UnreadCount++
	} else if prev != nil && !prev.Read && chat.UnreadCount > 0 {
		chat.UnreadCount--
	}

	// Most-recent-first ordering: re-insert at the head
	cs.chats = append(cs.chats[:idx], cs.chats[idx+1:]...)
	cs.chats = append([]api.Chat{chat}, cs.chats...)
}

// ToggleMute toggles the user's membership in the chat's muted-by set
func (cs *ChatState) ToggleMute(chatID, userID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.chats {
		if cs.chats[i].ID == chatID {
			cs.chats[i].MutedBy = toggleMember(cs.chats[i].MutedBy, userID)
			return
		}
	}
}

// ToggleBlock toggles the user's membership in the chat's blocked set
func (cs *ChatState) ToggleBlock(chatID, userID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for i := range cs.chats {
		if cs.chats[i].ID == chatID {
			cs.chats[i].BlockedUsers = toggleMember(cs.chats[i].BlockedUsers, userID)
			return
		}
	}
}

// IsMuted reports whether the user has muted the chat
func (cs *ChatState) IsMuted(chatID, userID string) bool {
	chat, ok := cs.Get(chatID)
	if !ok {
		return false
	}
	return contains(chat.MutedBy, userID)
}

// IsBlocked reports whether the user has blocked the chat
func (cs *ChatState) IsBlocked(chatID, userID string) bool {
	chat, ok := cs.Get(chatID)
	if !ok {
		return false
	}
	return contains(chat.BlockedUsers, userID)
}

func toggleMember(set []string, member string) []string {
	for i, m := range set {
		if m == member {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, member)
}

func contains(set []string, member string) bool {
	for _, m := range set {
		if m == member {
			return true
		}
	}
	return false
}
