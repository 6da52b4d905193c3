package service

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/output"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
)

type ExploreService struct{}

// NewExploreService creates a new explore service
func NewExploreService() *ExploreService {
	return &ExploreService{}
}

// Categories lists categories, with subcategories when categoryID is set
func (s *ExploreService) Categories(categoryID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var (
		categories []api.Category
		err        error
	)
	if categoryID != "" {
		categories, err = api.GetSubcategories(categoryID)
	} else {
		categories, err = api.GetCategories()
	}
	if err != nil {
		formatter.PrintError("Failed to load categories: %v", err)
		return err
	}

	if len(categories) == 0 {
		formatter.PrintInfo("No categories")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("categories", categories)
	}

	for _, c := range categories {
		fmt.Printf("%s  %s\n", c.ID, c.Name)
		for _, sub := range c.Subcategories {
			fmt.Printf("  %s  %s\n", sub.ID, sub.Name)
		}
	}
	return nil
}

// FAQs prints the FAQ list
func (s *ExploreService) FAQs() error {
	faqs, err := api.GetFAQs()
	if err != nil {
		formatter.PrintError("Failed to load FAQs: %v", err)
		return err
	}

	if len(faqs) == 0 {
		formatter.PrintInfo("No FAQs")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("faqs", faqs)
	}

	for _, f := range faqs {
		fmt.Printf("Q: %s\nA: %s\n\n", f.Question, f.Answer)
	}
	return nil
}

// Slides prints the home page slides
func (s *ExploreService) Slides() error {
	slides, err := api.GetSlides()
	if err != nil {
		formatter.PrintError("Failed to load slides: %v", err)
		return err
	}

	if len(slides) == 0 {
		formatter.PrintInfo("No slides")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("slides", slides)
	}

	for _, sl := range slides {
		fmt.Printf("%s  %s  %s\n", sl.ID, sl.Title, sl.Image)
	}
	return nil
}

// Logo prints the site logo URL
func (s *ExploreService) Logo() error {
	logo, err := api.GetLogo()
	if err != nil {
		formatter.PrintError("Failed to load logo: %v", err)
		return err
	}
	fmt.Println(logo)
	return nil
}

// Feedback sends site feedback
func (s *ExploreService) Feedback(subject, message string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var err error
	if subject == "" {
		subject, err = prompter.PromptString("Subject: ")
		if err != nil {
			return err
		}
	}
	if message == "" {
		message, err = prompter.PromptMultilineString("Message (empty line to finish):", 20)
		if err != nil {
			return err
		}
	}
	if subject == "" || message == "" {
		return fmt.Errorf("subject and message are required")
	}

	if err := api.SendFeedback(api.FeedbackRequest{Subject: subject, Message: message}); err != nil {
		formatter.PrintError("Failed to send feedback: %v", err)
		return err
	}

	formatter.PrintSuccess("Feedback sent. Thank you!")
	return nil
}

// Report files a report against a post or comment
func (s *ExploreService) Report(postID, commentID, reason, description string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if postID == "" && commentID == "" {
		return fmt.Errorf("pass --post or --comment to identify what to report")
	}

	var err error
	if reason == "" {
		options := []string{"spam", "harassment", "inappropriate", "misinformation", "other"}
		idx, err := prompter.PromptSelect("Reason", options)
		if err != nil {
			return err
		}
		reason = options[idx]
	}

	if description == "" {
		description, err = prompter.PromptString("Details (optional): ")
		if err != nil {
			return err
		}
	}

	if err := api.CreateReport(api.ReportRequest{
		PostID:      postID,
		CommentID:   commentID,
		Reason:      reason,
		Description: description,
	}); err != nil {
		formatter.PrintError("Failed to send report: %v", err)
		return err
	}

	formatter.PrintSuccess("Report submitted")
	return nil
}
