package client

import (
	"testing"

	"github.com/sparktechagency/phoenixx-cli/pkg/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if err := config.Init(t.TempDir() + "/config.toml"); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
}

// TestGetClientInitialization validates lazy initialization
func TestGetClientInitialization(t *testing.T) {
	initTestConfig(t)
	httpClient = nil

	c := GetClient()
	if c == nil {
		t.Fatal("GetClient returned nil")
	}
}

// TestGetClientSingleton returns the same instance across calls
func TestGetClientSingleton(t *testing.T) {
	initTestConfig(t)
	httpClient = nil

	c1 := GetClient()
	c2 := GetClient()
	if c1 != c2 {
		t.Error("GetClient returned different instances")
	}
}

// TestClientInitializesWithDefaults picks up base URL and timeout from config
func TestClientInitializesWithDefaults(t *testing.T) {
	initTestConfig(t)
	Init()

	c := GetClient()
	if c.BaseURL == "" {
		t.Error("Expected base URL to be set from config")
	}

	if c.GetClient().Timeout == 0 {
		t.Error("Expected timeout to be set from config")
	}
}

// TestClientUserAgent sets the CLI user agent
func TestClientUserAgent(t *testing.T) {
	initTestConfig(t)
	Init()

	ua := GetClient().Header.Get("User-Agent")
	if ua != "Phoenixx-CLI/0.1.0" {
		t.Errorf("Expected Phoenixx user agent, got %q", ua)
	}
}

// TestSetAuthToken adds the bearer prefix
func TestSetAuthToken(t *testing.T) {
	initTestConfig(t)
	Init()

	SetAuthToken("test-token")

	auth := GetClient().Header.Get("Authorization")
	if auth != "Bearer test-token" {
		t.Errorf("Expected 'Bearer test-token', got %q", auth)
	}
}

// TestSetAuthTokenInitializesClient works before Init
func TestSetAuthTokenInitializesClient(t *testing.T) {
	initTestConfig(t)
	httpClient = nil

	SetAuthToken("tok")

	if httpClient == nil {
		t.Fatal("SetAuthToken did not initialize the client")
	}
}

// TestClearAuthToken removes the auth header
func TestClearAuthToken(t *testing.T) {
	initTestConfig(t)
	Init()
	SetAuthToken("test-token")

	ClearAuthToken()

	if auth := GetClient().Header.Get("Authorization"); auth != "" {
		t.Errorf("Expected empty Authorization header, got %q", auth)
	}
}

// TestResetTokenLifecycle stores, returns and clears the reset token
func TestResetTokenLifecycle(t *testing.T) {
	initTestConfig(t)
	Init()

	SetResetToken("otp-token")
	if ResetToken() != "otp-token" {
		t.Errorf("Expected 'otp-token', got %q", ResetToken())
	}

	// Clearing auth also drops the pending reset token
	ClearAuthToken()
	if ResetToken() != "" {
		t.Errorf("Expected reset token cleared, got %q", ResetToken())
	}
}

// TestMultipleAuthTokens keeps only the latest token
func TestMultipleAuthTokens(t *testing.T) {
	initTestConfig(t)
	Init()

	SetAuthToken("first")
	SetAuthToken("second")

	auth := GetClient().Header.Get("Authorization")
	if auth != "Bearer second" {
		t.Errorf("Expected latest token, got %q", auth)
	}
}
