package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	chatPage    int
	chatLimit   int
	chatText    string
	chatReplyTo string
	chatForce   bool
	watchChatID string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Real-time messaging",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your chats",
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.List(chatPage, chatLimit)
	},
}

var chatCreateCmd = &cobra.Command{
	Use:   "create <user-id>",
	Short: "Start a chat with another user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Create(args[0])
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history <chat-id>",
	Short: "Show messages in a chat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.History(args[0], chatPage, chatLimit)
	},
}

var chatSendCmd = &cobra.Command{
	Use:   "send <chat-id>",
	Short: "Send a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Send(args[0], chatText, chatReplyTo)
	},
}

var chatReactCmd = &cobra.Command{
	Use:   "react <message-id> <reaction>",
	Short: "React to a message (like, love, haha, sad, angry)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.React(args[0], args[1])
	},
}

var chatPinCmd = &cobra.Command{
	Use:   "pin <message-id>",
	Short: "Pin a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Pin(args[0])
	},
}

var chatUnpinCmd = &cobra.Command{
	Use:   "unpin <message-id>",
	Short: "Unpin a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Unpin(args[0])
	},
}

var chatDeleteMsgCmd = &cobra.Command{
	Use:   "delete-message <message-id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.DeleteMessage(args[0])
	},
}

var chatMuteCmd = &cobra.Command{
	Use:   "mute <chat-id>",
	Short: "Toggle muting a chat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Mute(args[0])
	},
}

var chatBlockCmd = &cobra.Command{
	Use:   "block <chat-id>",
	Short: "Toggle blocking the other participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Block(args[0])
	},
}

var chatReadCmd = &cobra.Command{
	Use:   "read <chat-id>",
	Short: "Mark a chat as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.MarkRead(args[0])
	},
}

var chatDeleteCmd = &cobra.Command{
	Use:   "delete <chat-id>",
	Short: "Delete a chat and its messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Delete(args[0], chatForce)
	},
}

var chatWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live chat events",
	RunE: func(cmd *cobra.Command, args []string) error {
		chatSvc := service.NewChatService()
		return chatSvc.Watch(watchChatID)
	},
}

func init() {
	chatListCmd.Flags().IntVar(&chatPage, "page", 1, "Page number")
	chatListCmd.Flags().IntVar(&chatLimit, "limit", 20, "Chats per page")

	chatHistoryCmd.Flags().IntVar(&chatPage, "page", 1, "Page number (1 = newest)")
	chatHistoryCmd.Flags().IntVar(&chatLimit, "limit", 50, "Messages per page")

	chatSendCmd.Flags().StringVar(&chatText, "text", "", "Message text")
	chatSendCmd.Flags().StringVar(&chatReplyTo, "reply-to", "", "Message id to reply to")

	chatDeleteCmd.Flags().BoolVarP(&chatForce, "force", "f", false, "Skip confirmation")

	chatWatchCmd.Flags().StringVar(&watchChatID, "chat", "", "Print message bodies for this chat id")

	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatCreateCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatReactCmd)
	chatCmd.AddCommand(chatPinCmd)
	chatCmd.AddCommand(chatUnpinCmd)
	chatCmd.AddCommand(chatDeleteMsgCmd)
	chatCmd.AddCommand(chatMuteCmd)
	chatCmd.AddCommand(chatBlockCmd)
	chatCmd.AddCommand(chatReadCmd)
	chatCmd.AddCommand(chatDeleteCmd)
	chatCmd.AddCommand(chatWatchCmd)
}
