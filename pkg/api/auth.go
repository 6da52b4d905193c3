package api

import (
	json "github.com/json-iterator/go"
	"github.com/sparktechagency/phoenixx-cli/pkg/client"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// Signup registers a new account
func Signup(name, email, password string) error {
	logger.Debug("Signing up", "email", email)

	req := SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/signup")

	return CheckResponse(resp, err)
}

// Login authenticates user with email and password
func Login(email, password string) (*LoginResponse, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "user_id", loginResp.User.ID)
	return &loginResp, nil
}

// ForgotPassword requests a password-reset OTP to be emailed
func ForgotPassword(email string) error {
	logger.Debug("Requesting password reset", "email", email)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/v1/auth/forgot-password")

	return CheckResponse(resp, err)
}

// VerifyOTP verifies the emailed one-time code and returns a reset token
func VerifyOTP(email, code string) (*VerifyOTPResponse, error) {
	logger.Debug("Verifying OTP", "email", email)

	req := VerifyOTPRequest{
		Email: email,
		OTP:   code,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/verify-otp")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var otpResp VerifyOTPResponse
	if err := json.Unmarshal(resp.Body(), &otpResp); err != nil {
		return nil, err
	}

	return &otpResp, nil
}

// ResetPassword sets a new password. The endpoint authenticates with the
// raw reset token from OTP verification, not the normal bearer token.
func ResetPassword(newPassword, confirmPassword string) error {
	logger.Debug("Resetting password")

	req := ResetPasswordRequest{
		NewPassword:     newPassword,
		ConfirmPassword: confirmPassword,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", client.ResetToken()).
		SetBody(req).
		Post("/api/v1/auth/reset-password")

	return CheckResponse(resp, err)
}

// ChangePassword changes the password of the logged-in user
func ChangePassword(current, newPassword, confirm string) error {
	logger.Debug("Changing password")

	req := ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/auth/change-password")

	return CheckResponse(resp, err)
}

// GetCurrentUser gets the current authenticated user
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/api/v1/auth/me")

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
