package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestNewCLIError creates and validates a CLI error
func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	if err == nil {
		t.Fatal("NewCLIError returned nil")
	}

	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected type %s, got %s", ErrorTypeValidation, err.Type)
	}

	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}

	if err.Cause != cause {
		t.Error("Cause not set correctly")
	}
}

// TestWithSuggestion adds suggestion to error
func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil)
	suggestion := "Try something else"

	result := err.WithSuggestion(suggestion)

	if !result.HasSuggestion() {
		t.Error("HasSuggestion returned false")
	}

	if result.Suggestion != suggestion {
		t.Errorf("Expected suggestion '%s', got '%s'", suggestion, result.Suggestion)
	}
}

// TestErrorImplementsError validates error interface
func TestErrorImplementsError(t *testing.T) {
	var err error = NewCLIError(ErrorTypeNetwork, "boom", nil)
	if err.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

// TestUnwrap exposes the cause for errors.Is/As
func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCLIError(ErrorTypeServer, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
}

// TestNetworkError creates network error
func TestNetworkError(t *testing.T) {
	err := NetworkError("Connection failed")

	if err.Type != ErrorTypeNetwork {
		t.Errorf("Expected type %s, got %s", ErrorTypeNetwork, err.Type)
	}

	if !err.HasSuggestion() {
		t.Error("Expected suggestion for network error")
	}

	if !strings.Contains(err.Suggestion, "internet") {
		t.Error("Expected helpful suggestion about internet connection")
	}
}

// TestAuthError creates auth error with login suggestion
func TestAuthError(t *testing.T) {
	err := AuthError("Invalid credentials")

	if err.Type != ErrorTypeAuth {
		t.Errorf("Expected type %s, got %s", ErrorTypeAuth, err.Type)
	}

	if !strings.Contains(err.Suggestion, "auth login") {
		t.Error("Expected suggestion pointing at auth login")
	}
}

// TestSessionExpiredError creates session expired error
func TestSessionExpiredError(t *testing.T) {
	err := SessionExpiredError()

	if err.Type != ErrorTypeSessionExpired {
		t.Errorf("Expected type %s, got %s", ErrorTypeSessionExpired, err.Type)
	}
}

// TestForbiddenError creates forbidden error
func TestForbiddenError(t *testing.T) {
	err := ForbiddenError()

	if err.Type != ErrorTypeForbidden {
		t.Errorf("Expected type %s, got %s", ErrorTypeForbidden, err.Type)
	}
}

// TestNotFoundError includes resource info in message
func TestNotFoundError(t *testing.T) {
	err := NotFoundError("Post", "abc123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("Expected type %s, got %s", ErrorTypeNotFound, err.Type)
	}

	if !strings.Contains(err.Message, "Post") || !strings.Contains(err.Message, "abc123") {
		t.Errorf("Expected message with resource info, got '%s'", err.Message)
	}
}

// TestRateLimitError carries retry-after
func TestRateLimitError(t *testing.T) {
	err := RateLimitError(30)

	if err.Type != ErrorTypeRateLimit {
		t.Errorf("Expected type %s, got %s", ErrorTypeRateLimit, err.Type)
	}

	if err.RetryAfter != 30 {
		t.Errorf("Expected RetryAfter 30, got %d", err.RetryAfter)
	}

	if !strings.Contains(err.Suggestion, "30") {
		t.Error("Expected suggestion mentioning wait time")
	}
}

// TestConflictError creates conflict error
func TestConflictError(t *testing.T) {
	err := ConflictError("Username taken")

	if err.Type != ErrorTypeConflict {
		t.Errorf("Expected type %s, got %s", ErrorTypeConflict, err.Type)
	}
}

// TestChatBlockedError suggests unblocking
func TestChatBlockedError(t *testing.T) {
	err := ChatBlockedError()

	if err.Type != ErrorTypeChatBlocked {
		t.Errorf("Expected type %s, got %s", ErrorTypeChatBlocked, err.Type)
	}

	if !strings.Contains(err.Suggestion, "unblock") {
		t.Error("Expected suggestion about unblocking")
	}
}

// TestSocketError mentions reconnection
func TestSocketError(t *testing.T) {
	err := SocketError("read: connection reset")

	if err.Type != ErrorTypeSocket {
		t.Errorf("Expected type %s, got %s", ErrorTypeSocket, err.Type)
	}

	if !strings.Contains(err.Suggestion, "reconnect") {
		t.Error("Expected suggestion about reconnection")
	}
}

// TestCategorizeError maps message patterns to types
func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{"timeout", errors.New("request timeout"), ErrorTypeTimeout},
		{"deadline", errors.New("context deadline exceeded"), ErrorTypeTimeout},
		{"401", errors.New("401 unauthorized"), ErrorTypeAuth},
		{"403", errors.New("403 forbidden"), ErrorTypeForbidden},
		{"404", errors.New("404 not found"), ErrorTypeNotFound},
		{"429", errors.New("429 rate limit"), ErrorTypeRateLimit},
		{"500", errors.New("500 server error"), ErrorTypeServer},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategorizeError(tt.err)
			if result.Type != tt.expected {
				t.Errorf("Expected type %s, got %s", tt.expected, result.Type)
			}
		})
	}
}

// TestCategorizeErrorNil returns nil for nil
func TestCategorizeErrorNil(t *testing.T) {
	if CategorizeError(nil) != nil {
		t.Error("Expected nil for nil error")
	}
}

// TestCategorizeErrorPassthrough keeps existing CLIErrors
func TestCategorizeErrorPassthrough(t *testing.T) {
	original := ChatBlockedError()
	result := CategorizeError(original)

	if result != original {
		t.Error("Expected the original CLIError back")
	}
}

// TestFormatError builds a user-facing message
func TestFormatError(t *testing.T) {
	msg := FormatError(NetworkError("Connection failed"))

	if !strings.Contains(msg, "Connection failed") {
		t.Errorf("Expected message in output, got '%s'", msg)
	}

	if !strings.Contains(msg, string(ErrorTypeNetwork)) {
		t.Errorf("Expected type in output, got '%s'", msg)
	}
}

// TestFormatErrorNil returns empty string for nil
func TestFormatErrorNil(t *testing.T) {
	if FormatError(nil) != "" {
		t.Error("Expected empty string for nil error")
	}
}
