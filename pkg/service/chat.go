package service

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
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

type ChatService struct{}

// NewChatService creates a new chat service
func NewChatService() *ChatService {
	return &ChatService{}
}

// List shows the chat list with per-chat and total unread counts
func (s *ChatService) List(page, limit int) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	resp, err := api.GetChats(page, limit)
	if err != nil {
		formatter.PrintError("Failed to load chats: %v", err)
		return err
	}

	st := store.New(creds.UserID)
	st.Chats.SetChats(resp.Chats)

	chats := st.Chats.Chats()
	if len(chats) == 0 {
		formatter.PrintInfo("No chats yet")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("chats", chats)
	}

	headers := []string{"ID", "WITH", "LAST MESSAGE", "UNREAD", "FLAGS"}
	rows := make([][]string, 0, len(chats))
	for _, c := range chats {
		rows = append(rows, []string{
			c.ID,
			chatPeerName(c, creds.UserID),
			lastMessagePreview(c),
			fmt.Sprintf("%d", c.UnreadCount),
			chatFlags(st, c, creds.UserID),
		})
	}
	formatter.PrintTable(headers, rows)
	fmt.Printf("\n%d unread messages total\n", st.Chats.UnreadTotal())
	return nil
}

// Create starts a chat with another user
func (s *ChatService) Create(participantID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	chat, err := api.CreateChat(participantID)
	if err != nil {
		formatter.PrintError("Failed to create chat: %v", err)
		return err
	}

	formatter.PrintSuccess("Chat created (%s)", chat.ID)
	return nil
}

// History prints a page of messages for a chat, pinned messages first
func (s *ChatService) History(chatID string, page, limit int) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	resp, err := api.GetMessages(chatID, page, limit)
	if err != nil {
		formatter.PrintError("Failed to load messages: %v", err)
		return err
	}

	st := store.New(creds.UserID)
	st.Messages.SetPage(chatID, resp, page)

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("messages", st.Messages.Messages())
	}

	pinned := st.Messages.Pinned()
	if len(pinned) > 0 {
		fmt.Printf("\nPinned:\n")
		for _, m := range pinned {
			fmt.Printf("  📌 %s\n", messageLine(m, creds.UserID))
		}
	}

	msgs := st.Messages.Messages()
	if len(msgs) == 0 {
		formatter.PrintInfo("No messages")
		return nil
	}

	fmt.Printf("\n")
	for _, m := range msgs {
		fmt.Println(messageLine(m, creds.UserID))
	}
	if st.Messages.HasMore() {
		fmt.Printf("\nOlder messages available; pass --page %d\n", page+1)
	}
	return nil
}

// Send posts a message to a chat
func (s *ChatService) Send(chatID, text, replyTo string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var err error
	if text == "" {
		text, err = prompter.PromptString("Message: ")
		if err != nil {
			return err
		}
	}
	if text == "" {
		return fmt.Errorf("message cannot be empty")
	}

	msg, err := api.SendMessage(api.SendMessageRequest{
		ChatID:  chatID,
		Text:    text,
		ReplyTo: replyTo,
	})
	if err != nil {
		formatter.PrintError("Failed to send message: %v", err)
		return err
	}

	formatter.PrintSuccess("Sent (%s)", msg.ID)
	return nil
}

// React sets the caller's reaction on a message
func (s *ChatService) React(messageID, reaction string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	rt := api.ReactionType(strings.ToLower(reaction))
	switch rt {
	case api.ReactionLike, api.ReactionLove, api.ReactionHaha, api.ReactionSad, api.ReactionAngry:
	default:
		return fmt.Errorf("unknown reaction %q (like, love, haha, sad, angry)", reaction)
	}

	if _, err := api.ReactToMessage(messageID, rt); err != nil {
		formatter.PrintError("Failed to react: %v", err)
		return err
	}

	formatter.PrintSuccess("Reacted with %s", rt)
	return nil
}

// Pin pins a message in its chat
func (s *ChatService) Pin(messageID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.PinMessage(messageID); err != nil {
		formatter.PrintError("Failed to pin message: %v", err)
		return err
	}
	formatter.PrintSuccess("Message pinned")
	return nil
}

// Unpin removes a pin
func (s *ChatService) Unpin(messageID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.UnpinMessage(messageID); err != nil {
		formatter.PrintError("Failed to unpin message: %v", err)
		return err
	}
	formatter.PrintSuccess("Message unpinned")
	return nil
}

// DeleteMessage soft-deletes a message
func (s *ChatService) DeleteMessage(messageID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.DeleteMessage(messageID); err != nil {
		formatter.PrintError("Failed to delete message: %v", err)
		return err
	}
	formatter.PrintSuccess("Message deleted")
	return nil
}

// Mute toggles chat muting for the caller
func (s *ChatService) Mute(chatID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.MuteChat(chatID); err != nil {
		formatter.PrintError("Failed to toggle mute: %v", err)
		return err
	}
	formatter.PrintSuccess("Mute toggled")
	return nil
}

// Block toggles blocking the other participant
func (s *ChatService) Block(chatID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.BlockChat(chatID); err != nil {
		formatter.PrintError("Failed to toggle block: %v", err)
		return err
	}
	formatter.PrintSuccess("Block toggled")
	return nil
}

// MarkRead marks a chat as read
func (s *ChatService) MarkRead(chatID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}
	if err := api.MarkChatRead(chatID); err != nil {
		formatter.PrintError("Failed to mark chat read: %v", err)
		return err
	}
	formatter.PrintSuccess("Chat marked as read")
	return nil
}

// Delete removes a chat and its messages
func (s *ChatService) Delete(chatID string, force bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Delete this chat and all its messages?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteChat(chatID); err != nil {
		formatter.PrintError("Failed to delete chat: %v", err)
		return err
	}

	formatter.PrintSuccess("Chat deleted")
	return nil
}

// Watch streams live chat events until interrupted. When chatID is set,
// message bodies for that chat are printed as they arrive; otherwise only
// chat-level activity is shown.
func (s *ChatService) Watch(chatID string) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	st := store.New(creds.UserID)

	// Seed the store so reaction/pin events land on known messages
	chatsResp, err := api.GetChats(1, 50)
	if err != nil {
		formatter.PrintError("Failed to load chats: %v", err)
		return err
	}
	st.Chats.SetChats(chatsResp.Chats)

	if chatID != "" {
		msgResp, err := api.GetMessages(chatID, 1, 50)
		if err != nil {
			formatter.PrintError("Failed to load messages: %v", err)
			return err
		}
		st.Messages.SetPage(chatID, msgResp, 1)
	}

	sess := socket.NewSession(creds.UserID, socket.ConfigFromSettings())
	br := bridge.New(st)
	br.OnChange = func(event string) {
		printWatchEvent(st, creds.UserID, chatID, event)
	}

	// Mutations made elsewhere invalidate the chat tag; refetch so the
	// live view reflects them.
	unsub := api.Subscribe(chatWatchRefetch(st, func() (*api.ChatListResponse, error) {
		return api.GetChats(1, 50)
	}), api.TagChat)
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

	formatter.PrintInfo("Watching for chat activity (Ctrl+C to stop)...")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	stats := sess.Stats()
	fmt.Printf("\nReceived %d events (%d dropped), reconnected %d times\n",
		stats.EventsReceived, stats.EventsDropped, stats.ReconnectCount)
	return nil
}

// chatWatchRefetch builds the refetch hook the live chat view registers
// under the chat tag: reload the chat list into the watch store.
func chatWatchRefetch(st *store.Store, fetch func() (*api.ChatListResponse, error)) func() {
	return func() {
		resp, err := fetch()
		if err != nil {
			logger.Debug("Chat list refetch failed", "error", err)
			return
		}
		st.Chats.SetChats(resp.Chats)
	}
}

func printWatchEvent(st *store.Store, userID, openChatID, event string) {
	switch event {
	case bridge.EventNewMessage:
		if openChatID != "" && st.Messages.ChatID() == openChatID {
			msgs := st.Messages.Messages()
			if len(msgs) > 0 {
				fmt.Println(messageLine(msgs[len(msgs)-1], userID))
				return
			}
		}
		fmt.Printf("new message · %d unread total\n", st.Chats.UnreadTotal())
	case bridge.EventMessageReacted:
		fmt.Println("reaction updated")
	case bridge.EventMessagePinned:
		fmt.Printf("pins changed (%d pinned)\n", len(st.Messages.Pinned()))
	case bridge.EventMessageDeleted:
		fmt.Println("a message was deleted")
	case bridge.EventNewChat:
		fmt.Printf("new chat started (%d chats)\n", st.Chats.Len())
	case bridge.EventChatDeleted:
		fmt.Printf("a chat was deleted (%d chats)\n", st.Chats.Len())
	case bridge.EventChatMarkedAsRead:
		fmt.Printf("chat read · %d unread total\n", st.Chats.UnreadTotal())
	case bridge.EventChatMuted, bridge.EventChatBlocked:
		logger.Debug("Chat flags changed", "event", event)
	}
}

func chatPeerName(c api.Chat, userID string) string {
	for _, p := range c.Participants {
		if p.ID != userID {
			return "@" + p.UserName
		}
	}
	return "(unknown)"
}

func lastMessagePreview(c api.Chat) string {
	if c.LastMessage == nil {
		return ""
	}
	if c.LastMessage.IsDeleted {
		return "(deleted)"
	}
	text := c.LastMessage.Text
	if text == "" && len(c.LastMessage.Images) > 0 {
		text = fmt.Sprintf("(%d images)", len(c.LastMessage.Images))
	}
	// Truncate by runes so a multi-byte character is never split
	if r := []rune(text); len(r) > 36 {
		text = string(r[:33]) + "..."
	}
	return text
}

func chatFlags(st *store.Store, c api.Chat, userID string) string {
	var flags []string
	if st.Chats.IsMuted(c.ID, userID) {
		flags = append(flags, "muted")
	}
	if st.Chats.IsBlocked(c.ID, userID) {
		flags = append(flags, "blocked")
	}
	return strings.Join(flags, ",")
}

func messageLine(m api.Message, userID string) string {
	who := m.Sender.Name
	if m.Sender.ID == userID {
		who = "you"
	}
	if m.IsDeleted {
		return fmt.Sprintf("[%s] %s: (deleted)", m.CreatedAt.Format("15:04"), who)
	}
	line := fmt.Sprintf("[%s] %s: %s", m.CreatedAt.Format("15:04"), who, m.Text)
	if len(m.Reactions) > 0 {
		counts := map[api.ReactionType]int{}
		for _, r := range m.Reactions {
			counts[r.Type]++
		}
		var parts []string
		for t, n := range counts {
			parts = append(parts, fmt.Sprintf("%s×%d", t, n))
		}
		line += " (" + strings.Join(parts, " ") + ")"
	}
	return line
}
