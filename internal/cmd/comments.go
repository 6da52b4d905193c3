package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	commentContent string
	commentParent  string
	commentPost    string
	commentPage    int
	commentLimit   int
	commentForce   bool
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment on posts",
}

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "Show the comment thread for a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.List(args[0], commentPage, commentLimit)
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id>",
	Short: "Comment on a post, or reply with --reply-to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.Add(args[0], commentContent, commentParent)
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <comment-id>",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.Edit(args[0], commentContent, commentPost)
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.Delete(args[0], commentForce, commentPost)
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Toggle a like on a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.Like(args[0], commentPost)
	},
}

var commentMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		commentSvc := service.NewCommentService()
		return commentSvc.Mine(commentPage, commentLimit)
	},
}

func init() {
	commentListCmd.Flags().IntVar(&commentPage, "page", 1, "Page number")
	commentListCmd.Flags().IntVar(&commentLimit, "limit", 20, "Top-level comments per page")

	commentAddCmd.Flags().StringVar(&commentContent, "content", "", "Comment text")
	commentAddCmd.Flags().StringVar(&commentParent, "reply-to", "", "Parent comment id to reply to")

	commentEditCmd.Flags().StringVar(&commentContent, "content", "", "New comment text")
	commentEditCmd.Flags().StringVar(&commentPost, "post", "", "Post id; reprints its thread after the edit")

	commentDeleteCmd.Flags().BoolVarP(&commentForce, "force", "f", false, "Skip confirmation")
	commentDeleteCmd.Flags().StringVar(&commentPost, "post", "", "Post id; reprints its thread after the delete")

	commentLikeCmd.Flags().StringVar(&commentPost, "post", "", "Post id; reprints its thread after the toggle")

	commentMineCmd.Flags().IntVar(&commentPage, "page", 1, "Page number")
	commentMineCmd.Flags().IntVar(&commentLimit, "limit", 20, "Comments per page")

	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentLikeCmd)
	commentCmd.AddCommand(commentMineCmd)
}
