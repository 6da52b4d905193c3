package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var exploreCategoryID string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Browse site content",
}

var exploreCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and subcategories",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Categories(exploreCategoryID)
	},
}

var exploreFAQsCmd = &cobra.Command{
	Use:   "faqs",
	Short: "Show frequently asked questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.FAQs()
	},
}

var exploreSlidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Show home page slides",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Slides()
	},
}

var exploreLogoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Print the site logo URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		exploreSvc := service.NewExploreService()
		return exploreSvc.Logo()
	},
}

func init() {
	exploreCategoriesCmd.Flags().StringVar(&exploreCategoryID, "category", "", "List subcategories of this category id")

	exploreCmd.AddCommand(exploreCategoriesCmd)
	exploreCmd.AddCommand(exploreFAQsCmd)
	exploreCmd.AddCommand(exploreSlidesCmd)
	exploreCmd.AddCommand(exploreLogoCmd)
}
