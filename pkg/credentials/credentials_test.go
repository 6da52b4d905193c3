package credentials

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sparktechagency/phoenixx-cli/pkg/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
}

// TestIsExpired validates expiration logic
func TestIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{"future expiry", time.Now().Add(time.Hour), false},
		{"past expiry", time.Now().Add(-time.Hour), true},
		{"zero expiry never expires", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := &Credentials{AccessToken: "tok", ExpiresAt: tt.expiresAt}
			if got := creds.IsExpired(); got != tt.expected {
				t.Errorf("IsExpired() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestIsValid requires a token and a live expiry
func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		expected bool
	}{
		{"valid", Credentials{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, true},
		{"no token", Credentials{ExpiresAt: time.Now().Add(time.Hour)}, false},
		{"expired", Credentials{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Hour)}, false},
		{"token without expiry", Credentials{AccessToken: "tok"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestSaveLoadRoundTrip persists and restores credentials
func TestSaveLoadRoundTrip(t *testing.T) {
	initTestConfig(t)

	saved := &Credentials{
		AccessToken: "round-trip-token",
		ExpiresAt:   time.Now().Add(24 * time.Hour).Truncate(time.Second),
		UserID:      "user-1",
		Username:    "tester",
		Email:       "tester@example.com",
	}

	if err := Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}

	if loaded.AccessToken != saved.AccessToken {
		t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, saved.AccessToken)
	}
	if loaded.UserID != saved.UserID {
		t.Errorf("UserID = %q, want %q", loaded.UserID, saved.UserID)
	}
	if loaded.Username != saved.Username {
		t.Errorf("Username = %q, want %q", loaded.Username, saved.Username)
	}
	if loaded.Email != saved.Email {
		t.Errorf("Email = %q, want %q", loaded.Email, saved.Email)
	}
	if !loaded.ExpiresAt.Equal(saved.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", loaded.ExpiresAt, saved.ExpiresAt)
	}
}

// TestLoadMissing returns nil without error when no file exists
func TestLoadMissing(t *testing.T) {
	initTestConfig(t)

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Error("Expected nil credentials when file is missing")
	}
}

// TestSavePermissions restricts the file to the owner
func TestSavePermissions(t *testing.T) {
	initTestConfig(t)

	if err := Save(&Credentials{AccessToken: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(config.GetCredentialsPath())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Credentials file mode = %o, want 0600", perm)
	}
}

// TestDelete removes the file so Load sees nothing
func TestDelete(t *testing.T) {
	initTestConfig(t)

	if err := Save(&Credentials{AccessToken: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if creds != nil {
		t.Error("Expected nil credentials after Delete")
	}
}
