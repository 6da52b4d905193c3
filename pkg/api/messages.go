package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetMessages retrieves a page of a chat's message history, newest first.
// Page 1 also carries the chat's pinned messages.
func GetMessages(chatID string, page, limit int) (*MessageListResponse, error) {
	logger.Debug("Fetching messages", "chat_id", chatID, "page", page)

	var response MessageListResponse
	resp, err := client.GetClient().
		R().
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/chats/%s/messages", chatID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// SendMessage sends a message into a conversation
func SendMessage(req SendMessageRequest) (*Message, error) {
	logger.Debug("Sending message", "chat_id", req.ChatID)

	var response struct {
		Message Message `json:"message"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/messages")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagMessage, TagChat)
	return &response.Message, nil
}

// ReactToMessage sets the caller's reaction on a message. A user has at
// most one reaction per message; the server replaces any existing one.
func ReactToMessage(messageID string, reaction ReactionType) (*Message, error) {
	logger.Debug("Reacting to message", "message_id", messageID, "reaction", reaction)

	var response struct {
		Message Message `json:"message"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"reactionType": string(reaction)}).
		SetResult(&response).
		Patch(fmt.Sprintf("/api/v1/messages/%s/react", messageID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagMessage)
	return &response.Message, nil
}

// PinMessage pins a message in its conversation
func PinMessage(messageID string) error {
	logger.Debug("Pinning message", "message_id", messageID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/messages/%s/pin", messageID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagMessage)
	return nil
}

// UnpinMessage unpins a message
func UnpinMessage(messageID string) error {
	logger.Debug("Unpinning message", "message_id", messageID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/messages/%s/unpin", messageID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagMessage)
	return nil
}

// DeleteMessage soft-deletes a message. The record survives with blanked
// text and images and isDeleted set.
func DeleteMessage(messageID string) error {
	logger.Debug("Deleting message", "message_id", messageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/messages/%s", messageID))

	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	Invalidate(TagMessage, TagChat)
	return nil
}
