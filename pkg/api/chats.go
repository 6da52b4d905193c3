package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetChats retrieves the chat list, newest activity first. The response's
// UnreadCount is the server's authoritative total and is used to correct
// any local drift.
func GetChats(page, limit int) (*ChatListResponse, error) {
	logger.Debug("Fetching chats", "page", page)

	var response ChatListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get("/api/v1/chats")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// CreateChat creates (or returns) a conversation with another user
func CreateChat(participantID string) (*Chat, error) {
	logger.Debug("Creating chat", "participant_id", participantID)

	var response struct {
		Chat Chat `json:"chat"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"participant": participantID}).
		SetResult(&response).
		Post("/api/v1/chats")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagChat)
	return &response.Chat, nil
}

// MuteChat toggles mute on a conversation
func MuteChat(chatID string) error {
	logger.Debug("Toggling chat mute", "chat_id", chatID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/chats/%s/mute", chatID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagChat)
	return nil
}

// BlockChat toggles block on a conversation
func BlockChat(chatID string) error {
	logger.Debug("Toggling chat block", "chat_id", chatID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/chats/%s/block", chatID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagChat)
	return nil
}

// MarkChatRead marks every message in a conversation as read
func MarkChatRead(chatID string) error {
	logger.Debug("Marking chat as read", "chat_id", chatID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/chats/%s/mark-read", chatID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagChat)
	return nil
}

// DeleteChat deletes a conversation
func DeleteChat(chatID string) error {
	logger.Debug("Deleting chat", "chat_id", chatID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/chats/%s", chatID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagChat, TagMessage)
	return nil
}
