package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sparktechagency/phoenixx-cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with Phoenixx",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Phoenixx account",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Signup()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Phoenixx",
	Long:  "Authenticate with Phoenixx using email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Login()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Phoenixx",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.WhoAmI()
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Reset a forgotten password via email code",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.ForgotPassword()
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the current account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.ChangePassword()
	},
}

func init() {
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
	authCmd.AddCommand(forgotPasswordCmd)
	authCmd.AddCommand(changePasswordCmd)
}
