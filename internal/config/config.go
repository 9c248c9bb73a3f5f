// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Form    string `json:"form,omitempty"`     // Path to a saved form HTML file
	FormURL string `json:"form_url,omitempty"` // URL to fetch the form from

	// Profile selection
	Profile      string `json:"profile,omitempty"`       // Path to a standalone profile JSON file
	ProfileName  string `json:"profile_name,omitempty"`  // Named profile in the local store
	ProfileStore string `json:"profile_store,omitempty"` // Path to the profile store file

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Force headless browser rendering
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed match information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (server mode)
	ListenAddr  string `json:"listen_addr,omitempty"`  // Server listen address
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Form != "" && c.FormURL != "" {
		return fmt.Errorf("config error: 'form' and 'form_url' are mutually exclusive")
	}
	if c.Profile != "" && c.ProfileName != "" {
		return fmt.Errorf("config error: 'profile' and 'profile_name' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.Form != "" {
		if _, err := os.Stat(c.Form); os.IsNotExist(err) {
			return fmt.Errorf("config error: form file not found: %s", c.Form)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Form == "" {
		result.Form = defaults.Form
	}
	if result.FormURL == "" {
		result.FormURL = defaults.FormURL
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.ProfileName == "" {
		result.ProfileName = defaults.ProfileName
	}
	if result.ProfileStore == "" {
		result.ProfileStore = defaults.ProfileStore
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
