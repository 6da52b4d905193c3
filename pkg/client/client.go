package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sparktechagency/phoenixx-cli/pkg/config"
	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

var httpClient *resty.Client
var resetToken string

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Phoenixx-CLI/0.1.0")

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetAuthToken sets the authorization token
func SetAuthToken(token string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetHeader("Authorization", "Bearer "+token)
}

// ClearAuthToken clears the authorization token
func ClearAuthToken() {
	// Re-init the client to clear auth headers
	Init()
	resetToken = ""
}

// SetResetToken stores the one-time token issued by OTP verification. The
// reset-password endpoint sends it as a raw header value instead of the
// normal bearer token.
func SetResetToken(token string) {
	resetToken = token
}

// ResetToken returns the stored one-time reset token
func ResetToken() string {
	return resetToken
}
