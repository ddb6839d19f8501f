// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Candidate string `json:"candidate,omitempty"` // Path to candidate profile JSON
	Jobs      string `json:"jobs,omitempty"`      // Path to job listings JSON feed
	JobsURL   string `json:"jobs_url,omitempty"`  // URL of a job listings JSON feed

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key (interview question generation)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA profile pages
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	TopN        int    `json:"top_n,omitempty"`        // Number of ranked matches to print (0 = all)

	// Scoring weight overrides. When present they replace the default
	// factor weights and must sum to 1.0 (validated at engine startup).
	Weights *WeightsConfig `json:"weights,omitempty"`
}

// WeightsConfig mirrors the engine's factor weights for JSON configuration.
type WeightsConfig struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Title      float64 `json:"title"`
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
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Jobs != "" && c.JobsURL != "" {
		return fmt.Errorf("config error: 'jobs' and 'jobs_url' are mutually exclusive")
	}

	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.Candidate != "" {
		if _, err := os.Stat(c.Candidate); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidate file not found: %s", c.Candidate)
		}
	}
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Candidate == "" {
		result.Candidate = defaults.Candidate
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.JobsURL == "" {
		result.JobsURL = defaults.JobsURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
