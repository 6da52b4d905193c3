package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTemp(t *testing.T) {
	t.Helper()
	if err := Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
}

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	initTemp(t)

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetCredentialsPath validates the credentials path sits under the
// config directory
func TestGetCredentialsPath(t *testing.T) {
	initTemp(t)

	credsPath := GetCredentialsPath()
	if credsPath == "" {
		t.Fatal("Credentials path should not be empty")
	}
	if !filepath.IsAbs(credsPath) {
		t.Error("Credentials path should be absolute")
	}
	if filepath.Dir(credsPath) != GetConfigDir() {
		t.Errorf("Credentials path %s should be under config dir %s", credsPath, GetConfigDir())
	}
}

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	expectedDir := filepath.Join(tempDir, "custom", "path")
	if GetConfigDir() != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, GetConfigDir())
	}

	// The directory is created on init
	if _, err := os.Stat(expectedDir); err != nil {
		t.Fatalf("Config directory was not created: %v", err)
	}
}

// TestInitWithoutPath validates default path initialization
func TestInitWithoutPath(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Failed to initialize with default path: %v", err)
	}

	home, _ := os.UserHomeDir()
	expectedDir := filepath.Join(home, ".config", "phoenixx", "cli")
	if GetConfigDir() != expectedDir {
		t.Errorf("Expected default config dir %s, got %s", expectedDir, GetConfigDir())
	}
}

// TestAPIDefaults validates the development API defaults
func TestAPIDefaults(t *testing.T) {
	initTemp(t)

	if baseURL := GetString("api.base_url"); baseURL != "http://localhost:5000" {
		t.Errorf("Expected default base URL 'http://localhost:5000', got '%s'", baseURL)
	}
	if timeout := GetInt("api.timeout"); timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", timeout)
	}
}

// TestWebSocketDefaults validates the realtime connection defaults
func TestWebSocketDefaults(t *testing.T) {
	initTemp(t)

	if host := GetString("ws.host"); host != "localhost" {
		t.Errorf("Expected default ws.host 'localhost', got '%s'", host)
	}
	if port := GetInt("ws.port"); port != 5000 {
		t.Errorf("Expected default ws.port 5000, got %d", port)
	}
	if path := GetString("ws.path"); path != "/" {
		t.Errorf("Expected default ws.path '/', got '%s'", path)
	}
	if GetBool("ws.tls") {
		t.Error("Expected ws.tls to default to false")
	}
}

// TestOutputDefaults validates output format and theme defaults
func TestOutputDefaults(t *testing.T) {
	initTemp(t)

	if format := GetString("output.format"); format != "text" {
		t.Errorf("Expected default format 'text', got '%s'", format)
	}
	if theme := GetString("output.theme"); theme != "light" {
		t.Errorf("Expected default theme 'light', got '%s'", theme)
	}
}

// TestLogDefaults validates log level and file defaults
func TestLogDefaults(t *testing.T) {
	initTemp(t)

	if level := GetString("log.level"); level != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", level)
	}
	logFile := GetString("log.file")
	if filepath.Base(logFile) != "phoenixx-cli.log" {
		t.Errorf("Expected log file 'phoenixx-cli.log', got '%s'", logFile)
	}
}

// TestGetBoolUnknownKey returns false without panicking
func TestGetBoolUnknownKey(t *testing.T) {
	initTemp(t)

	if GetBool("some.bool.key") {
		t.Error("Unknown bool key should read as false")
	}
}

// TestLogFileTildeExpansion expands ~ in log.file reads
func TestLogFileTildeExpansion(t *testing.T) {
	initTemp(t)

	if err := SetString("log.file", "~/logs/phoenixx-cli.log"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}

	logFile := GetString("log.file")
	if strings.HasPrefix(logFile, "~") {
		t.Errorf("Expected tilde expanded, got '%s'", logFile)
	}
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(logFile, home) {
		t.Errorf("Expected log file under %s, got '%s'", home, logFile)
	}
}

// TestSetStringPersists writes through to the config file
func TestSetStringPersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if err := SetString("output.theme", "dark"); err != nil {
		t.Fatalf("SetString failed: %v", err)
	}
	if theme := GetString("output.theme"); theme != "dark" {
		t.Errorf("Expected theme 'dark', got '%s'", theme)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Config file was not written: %v", err)
	}
	if !strings.Contains(string(raw), "dark") {
		t.Error("Written config should contain the new value")
	}
}

// TestMultipleInitCalls validates re-initialization moves the config dir
func TestMultipleInitCalls(t *testing.T) {
	tempDir := t.TempDir()

	if err := Init(filepath.Join(tempDir, "config1", "config.toml")); err != nil {
		t.Fatalf("First init failed: %v", err)
	}
	firstDir := GetConfigDir()

	if err := Init(filepath.Join(tempDir, "config2", "config.toml")); err != nil {
		t.Fatalf("Second init failed: %v", err)
	}

	if firstDir == GetConfigDir() {
		t.Errorf("Config dir should change after re-init, both were %s", firstDir)
	}
}

// TestConfigKeyExistence validates that every documented key has a default
func TestConfigKeyExistence(t *testing.T) {
	initTemp(t)

	stringKeys := []string{
		"api.base_url",
		"ws.host",
		"ws.path",
		"output.format",
		"output.theme",
		"log.level",
		"log.file",
	}
	for _, key := range stringKeys {
		if GetString(key) == "" {
			t.Errorf("Expected non-empty default for %s", key)
		}
	}

	intKeys := []string{"api.timeout", "ws.port"}
	for _, key := range intKeys {
		if GetInt(key) <= 0 {
			t.Errorf("Expected positive default for %s, got %d", key, GetInt(key))
		}
	}
}
