package service

import (
	"fmt"

	"github.com/sparktechagency/phoenixx-cli/pkg/api"
	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/credentials"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
	"github.com/sparktechagency/phoenixx-cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// requireAuth loads credentials and attaches the bearer token to the HTTP
// client. Most services start here.
func requireAuth() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return nil, err
	}

	if creds == nil || !creds.IsValid() {
		formatter.PrintError("Not logged in. Please run 'phoenixx-cli auth login'")
		return nil, fmt.Errorf("not authenticated")
	}

	client.SetAuthToken(creds.AccessToken)
	return creds, nil
}

// Login handles user login
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	loginResp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	client.SetAuthToken(loginResp.AccessToken)

	creds = &credentials.Credentials{
		AccessToken: loginResp.AccessToken,
		UserID:      loginResp.User.ID,
		Username:    loginResp.User.UserName,
		Email:       loginResp.User.Email,
	}

	if err := credentials.Save(creds); err != nil {
		logger.Error("Failed to save credentials", "error", err)
		return err
	}

	formatter.PrintSuccess("Logged in as %s", loginResp.User.Name)
	return nil
}

// Signup handles account registration
func (s *AuthService) Signup() error {
	name, err := prompter.PromptString("Name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := api.Signup(name, email, password); err != nil {
		formatter.PrintError("Signup failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Account created. Check your email for a verification code, then run 'phoenixx-cli auth login'.")
	return nil
}

// Logout clears the stored session
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()

	formatter.PrintSuccess("Logged out successfully")
	return nil
}

// WhoAmI shows the current session
func (s *AuthService) WhoAmI() error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			formatter.PrintError("Session expired. Please login again.")
			credentials.Delete()
			return fmt.Errorf("unauthorized")
		}
		return err
	}

	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Name":     user.Name,
		"Username": user.UserName,
		"Email":    user.Email,
		"User ID":  creds.UserID,
	})
	return nil
}

// ForgotPassword runs the email → OTP → reset flow
func (s *AuthService) ForgotPassword() error {
	email, err := prompter.PromptString("Account email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if err := api.ForgotPassword(email); err != nil {
		formatter.PrintError("Failed to request reset: %v", err)
		return err
	}
	formatter.PrintInfo("A one-time code was sent to %s", email)

	code, err := prompter.PromptString("One-time code: ")
	if err != nil {
		return err
	}

	otpResp, err := api.VerifyOTP(email, code)
	if err != nil {
		formatter.PrintError("Code verification failed: %v", err)
		return err
	}

	// The reset endpoint wants this raw token, not a bearer header
	client.SetResetToken(otpResp.ResetToken)

	newPassword, err := prompter.PromptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := api.ResetPassword(newPassword, confirm); err != nil {
		formatter.PrintError("Password reset failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Password reset. Log in with your new password.")
	return nil
}

// ChangePassword changes the logged-in user's password
func (s *AuthService) ChangePassword() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	current, err := prompter.PromptPassword("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := prompter.PromptPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm new password: ")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := api.ChangePassword(current, newPassword, confirm); err != nil {
		formatter.PrintError("Failed to change password: %v", err)
		return err
	}

	formatter.PrintSuccess("Password changed")
	return nil
}
