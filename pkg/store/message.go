package store

import (
	"sync"
	"time"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
)

// MessageState is the message slice for the currently open chat: a flat
// chronological message list, the derived pinned list (most recently
// pinned first), and the pagination cursor.
type MessageState struct {
	mu       sync.RWMutex
	chatID   string
	messages []api.Message
	pinned   []api.Message

	page    int
	limit   int
	hasMore bool
}

// NewMessageState creates an empty message slice
func NewMessageState() *MessageState {
	return &MessageState{limit: 20}
}

// Reset clears all collections and the pagination cursor. Used when
// switching chats.
func (ms *MessageState) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.chatID = ""
	ms.messages = nil
	ms.pinned = nil
	ms.page = 0
	ms.hasMore = false
}

// ChatID returns the chat the slice currently holds messages for
func (ms *MessageState) ChatID() string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.chatID
}

// Messages returns a copy of the message list in chronological order
func (ms *MessageState) Messages() []api.Message {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]api.Message, len(ms.messages))
	copy(out, ms.messages)
	return out
}

// Pinned returns a copy of the pinned list, most recently pinned first
func (ms *MessageState) Pinned() []api.Message {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]api.Message, len(ms.pinned))
	copy(out, ms.pinned)
	return out
}

// HasMore reports whether older pages remain to be fetched
func (ms *MessageState) HasMore() bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.hasMore
}

// Page returns the last fetched page number
func (ms *MessageState) Page() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.page
}

// SetPage merges a fetched page into the slice. The server returns pages
// newest-first, so page 1 replaces the list wholesale in chronological
// order and seeds the pinned list; later pages hold older history and are
// prepended flattened, skipping ids already present.
func (ms *MessageState) SetPage(chatID string, resp *api.MessageListResponse, page int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	older := make([]api.Message, len(resp.Messages))
	copy(older, resp.Messages)
	reverse(older)

	if page <= 1 || chatID != ms.chatID {
		ms.chatID = chatID
		ms.messages = older
		ms.pinned = nil
		for _, m := range resp.PinnedMessages {
			ms.pinned = append(ms.pinned, m)
		}
		ms.page = 1
	} else {
		merged := make([]api.Message, 0, len(older)+len(ms.messages))
		for _, m := range older {
			if ms.indexOf(m.ID) == -1 {
				merged = append(merged, m)
			}
		}
		ms.messages = append(merged, ms.messages...)
		ms.page = page
	}

	if resp.Meta.Limit > 0 {
		ms.limit = resp.Meta.Limit
	}
	ms.hasMore = ms.page < resp.Meta.TotalPage
}

// UpsertMessage replaces the message in place when its id is already
// known, otherwise appends it
func (ms *MessageState) UpsertMessage(msg api.Message) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if i := ms.indexOf(msg.ID); i != -1 {
		ms.messages[i] = msg
		return
	}
	ms.messages = append(ms.messages, msg)
}

// UpdateReaction sets a user's reaction on a message. A user has at most
// one active reaction per message: a repeat reaction replaces the
// existing entry's type and timestamp instead of accumulating.
func (ms *MessageState) UpdateReaction(messageID, userID string, reaction api.ReactionType, at time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	i := ms.indexOf(messageID)
	if i == -1 {
		return
	}

	for j := range ms.messages[i].Reactions {
		if ms.messages[i].Reactions[j].UserID == userID {
			ms.messages[i].Reactions[j].Type = reaction
			ms.messages[i].Reactions[j].Timestamp = at
			return
		}
	}

	ms.messages[i].Reactions = append(ms.messages[i].Reactions, api.Reaction{
		ID:        localReactionID(messageID, userID),
		UserID:    userID,
		Type:      reaction,
		Timestamp: at,
	})
}

// UpdatePin toggles a message's pin state and keeps the derived pinned
// list in sync
func (ms *MessageState) UpdatePin(messageID string, pinned bool, pinnedBy string, at time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	i := ms.indexOf(messageID)
	if i == -1 {
		return
	}

	ms.messages[i].IsPinned = pinned
	if pinned {
		ms.messages[i].PinnedBy = pinnedBy
		ms.messages[i].PinnedAt = &at
		ms.removePinned(messageID)
		ms.pinned = append([]api.Message{ms.messages[i]}, ms.pinned...)
	} else {
		ms.messages[i].PinnedBy = ""
		ms.messages[i].PinnedAt = nil
		ms.removePinned(messageID)
	}
}

// SoftDeleteMessage marks a message deleted, blanking its text and images
// and dropping it from the pinned list. Safe to apply repeatedly.
func (ms *MessageState) SoftDeleteMessage(messageID string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	i := ms.indexOf(messageID)
	if i == -1 {
		return
	}

	ms.messages[i].Text = ""
	ms.messages[i].Images = nil
	ms.messages[i].IsDeleted = true
	ms.messages[i].IsPinned = false
	ms.messages[i].PinnedBy = ""
	ms.messages[i].PinnedAt = nil
	ms.removePinned(messageID)
}

// Get returns the message with the given id
func (ms *MessageState) Get(messageID string) (api.Message, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if i := ms.indexOf(messageID); i != -1 {
		return ms.messages[i], true
	}
	return api.Message{}, false
}

// callers must hold ms.mu
func (ms *MessageState) indexOf(messageID string) int {
	for i, m := range ms.messages {
		if m.ID == messageID {
			return i
		}
	}
	return -1
}

// callers must hold ms.mu
func (ms *MessageState) removePinned(messageID string) {
	for i, m := range ms.pinned {
		if m.ID == messageID {
			ms.pinned = append(ms.pinned[:i], ms.pinned[i+1:]...)
			return
		}
	}
}

func reverse(msgs []api.Message) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}

// localReactionID builds the temporary client-side id a reaction carries
// until the next server fetch replaces it
func localReactionID(messageID, userID string) string {
	return "local-" + messageID + "-" + userID
}
