package service

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/credentials"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
)

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Show prints the logged-in user's profile
func (s *ProfileService) Show() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	user, err := api.GetProfile()
	if err != nil {
		formatter.PrintError("Failed to load profile: %v", err)
		return err
	}

	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Name":     user.Name,
		"Username": user.UserName,
		"Email":    user.Email,
		"Bio":      user.Bio,
		"Phone":    user.Phone,
		"Address":  user.Address,
		"Joined":   user.CreatedAt.Format("2006-01-02"),
	})
	return nil
}

// Update edits profile fields; empty fields are left unchanged
func (s *ProfileService) Update(name, bio, phone, address string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if name == "" && bio == "" && phone == "" && address == "" {
		return fmt.Errorf("nothing to update; pass --name, --bio, --phone or --address")
	}

	user, err := api.UpdateProfile(api.UpdateProfileRequest{
		Name:    name,
		Bio:     bio,
		Phone:   phone,
		Address: address,
	})
	if err != nil {
		formatter.PrintError("Failed to update profile: %v", err)
		return err
	}

	formatter.PrintSuccess("Profile updated for %s", user.Name)
	return nil
}

// DeleteAccount permanently deletes the account after password confirmation
func (s *ProfileService) DeleteAccount() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	formatter.PrintWarning("This permanently deletes your account, posts and chats.")
	confirm, err := prompter.PromptConfirm("Are you sure?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	if err := api.DeleteAccount(password); err != nil {
		formatter.PrintError("Failed to delete account: %v", err)
		return err
	}

	credentials.Delete()
	formatter.PrintSuccess("Account deleted")
	return nil
}
