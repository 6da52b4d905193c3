package service

import (
	"fmt"
	"sort"

	"github.com/sparktechagency/phoenixx-cli/pkg/config"
	"github.com/sparktechagency/phoenixx-cli/pkg/formatter"
	"github.com/sparktechagency/phoenixx-cli/pkg/output"
)

type SettingsService struct{}

// NewSettingsService creates a new settings service
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// settableKeys are the config keys `settings set` accepts
var settableKeys = map[string]bool{
	"api.base_url":  true,
	"api.timeout":   true,
	"ws.host":       true,
	"ws.port":       true,
	"ws.path":       true,
	"ws.tls":        true,
	"output.format": true,
	"output.theme":  true,
	"log.level":     true,
	"log.file":      true,
}

// Show prints the current configuration
func (s *SettingsService) Show() error {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := []string{"KEY", "VALUE"}
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, config.GetString(k)})
	}
	formatter.PrintTable(headers, rows)

	fmt.Printf("\nConfig file: %s\n", config.GetConfigDir())
	return nil
}

// Set writes one configuration key
func (s *SettingsService) Set(key, value string) error {
	if !settableKeys[key] {
		return fmt.Errorf("unknown setting %q; run 'phoenixx-cli settings show' for the list", key)
	}

	if key == "output.format" && !output.ValidateOutputFormat(value) {
		return fmt.Errorf("invalid output format %q (text, json, table)", value)
	}
	if key == "output.theme" && value != "light" && value != "dark" {
		return fmt.Errorf("invalid theme %q (light, dark)", value)
	}

	if err := config.SetString(key, value); err != nil {
		formatter.PrintError("Failed to save setting: %v", err)
		return err
	}

	formatter.PrintSuccess("%s = %s", key, value)
	return nil
}

// Get prints one configuration value
func (s *SettingsService) Get(key string) error {
	if !settableKeys[key] {
		return fmt.Errorf("unknown setting %q", key)
	}
	fmt.Println(config.GetString(key))
	return nil
}
