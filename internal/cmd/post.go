package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	postTitle       string
	postContent     string
	postCategory    string
	postSubcategory string
	postPage        int
	postLimit       int
	postForce       bool
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create and manage posts",
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Show(args[0])
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Create(postTitle, postContent, postCategory, postSubcategory)
	},
}

var postUpdateCmd = &cobra.Command{
	Use:   "update <post-id>",
	Short: "Edit a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Update(args[0], postTitle, postContent)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Delete(args[0], postForce)
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle a like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Like(args[0])
	},
}

var postSaveCmd = &cobra.Command{
	Use:   "save <post-id>",
	Short: "Save a post for later",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Save(args[0])
	},
}

var postUnsaveCmd = &cobra.Command{
	Use:   "unsave <post-id>",
	Short: "Remove a post from saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Unsave(args[0])
	},
}

var postSavedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Saved(postPage, postLimit)
	},
}

var postMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Mine(postPage, postLimit)
	},
}

func init() {
	postCreateCmd.Flags().StringVar(&postTitle, "title", "", "Post title")
	postCreateCmd.Flags().StringVar(&postContent, "content", "", "Post body")
	postCreateCmd.Flags().StringVar(&postCategory, "category", "", "Category id")
	postCreateCmd.Flags().StringVar(&postSubcategory, "subcategory", "", "Subcategory id")

	postUpdateCmd.Flags().StringVar(&postTitle, "title", "", "New title")
	postUpdateCmd.Flags().StringVar(&postContent, "content", "", "New body")

	postDeleteCmd.Flags().BoolVarP(&postForce, "force", "f", false, "Skip confirmation")

	postSavedCmd.Flags().IntVar(&postPage, "page", 1, "Page number")
	postSavedCmd.Flags().IntVar(&postLimit, "limit", 20, "Posts per page")
	postMineCmd.Flags().IntVar(&postPage, "page", 1, "Page number")
	postMineCmd.Flags().IntVar(&postLimit, "limit", 20, "Posts per page")

	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postUpdateCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postSaveCmd)
	postCmd.AddCommand(postUnsaveCmd)
	postCmd.AddCommand(postSavedCmd)
	postCmd.AddCommand(postMineCmd)
}
