package api

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetCategories retrieves all categories with their subcategories
func GetCategories() ([]Category, error) {
	logger.Debug("Fetching categories")

	var response struct {
		Categories []Category `json:"categories"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/categories")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Categories, nil
}

// GetSubcategories retrieves the subcategories of one category
func GetSubcategories(categoryID string) ([]Category, error) {
	logger.Debug("Fetching subcategories", "category_id", categoryID)

	var response struct {
		Subcategories []Category `json:"subcategories"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/categories/%s/subcategories", categoryID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Subcategories, nil
}

// GetFAQs retrieves the FAQ list
func GetFAQs() ([]FAQ, error) {
	logger.Debug("Fetching FAQs")

	var response struct {
		FAQs []FAQ `json:"faqs"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/faqs")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.FAQs, nil
}

// SendFeedback submits user feedback
func SendFeedback(req FeedbackRequest) error {
	logger.Debug("Sending feedback", "subject", req.Subject)

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Post("/api/v1/feedback")

	return CheckResponse(resp, err)
}

// CreateReport reports a post or a comment
func CreateReport(req ReportRequest) error {
	logger.Debug("Creating report", "post_id", req.PostID, "comment_id", req.CommentID)

	resp, err := client.GetClient().
		R().
		SetBody(req).
		Post("/api/v1/reports")

	return CheckResponse(resp, err)
}

// GetSlides retrieves the announcement slider content
func GetSlides() ([]Slide, error) {
	logger.Debug("Fetching announcement slides")

	var response struct {
		Slides []Slide `json:"slides"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/slides")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Slides, nil
}

// GetLogo retrieves the site logo URL
func GetLogo() (string, error) {
	logger.Debug("Fetching site logo")

	var response struct {
		Logo string `json:"logo"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/logo")

	if err := CheckResponse(resp, err); err != nil {
		return "", err
	}

	return response.Logo, nil
}
