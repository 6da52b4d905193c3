package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var (
	feedCategory    string
	feedSubcategory string
	feedPage        int
	feedLimit       int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the community feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Feed(feedCategory, feedSubcategory, feedPage, feedLimit)
	},
}

func init() {
	feedCmd.Flags().StringVar(&feedCategory, "category", "", "Filter by category id")
	feedCmd.Flags().StringVar(&feedSubcategory, "subcategory", "", "Filter by subcategory id")
	feedCmd.Flags().IntVar(&feedPage, "page", 1, "Page number")
	feedCmd.Flags().IntVar(&feedLimit, "limit", 20, "Posts per page")
}
