package api

import (
	json "github.com/json-iterator/go"
	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// GetProfile retrieves the logged-in user's profile
func GetProfile() (*User, error) {
	logger.Debug("Fetching profile")

	resp, err := client.GetClient().
		R().
		Get("/api/v1/profile")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var response struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, err
	}

	return &response.User, nil
}

// UpdateProfile updates the logged-in user's profile
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	var response struct {
		User User `json:"user"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Patch("/api/v1/profile")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	Invalidate(TagProfile)
	return &response.User, nil
}

// DeleteAccount permanently deletes the logged-in user's account
func DeleteAccount(password string) error {
	logger.Debug("Deleting account")

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"password": password}).
		Delete("/api/v1/profile")

	return CheckResponse(resp, err)
}
