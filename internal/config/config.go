// Package config provides configuration loading and validation for the CLI and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-auditor/internal/country"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Defaults applied by MergeWithDefaults
const (
	DefaultPort        = 8080
	DefaultRateLimit   = 60
	DefaultRateBurst   = 10
	DefaultConcurrency = 4
)

var validate = validator.New()

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Audit
	Country string `json:"country,omitempty"` // Default target market (ISO 3166-1 alpha-2)
	Name    string `json:"name,omitempty"`    // Candidate name used in coach reports
	Format  string `json:"format,omitempty" validate:"omitempty,oneof=json text"`

	// Batch
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0,lte=64"` // Parallel audits in batch mode

	// Server
	Port      int `json:"port,omitempty" validate:"gte=0,lte=65535"`
	RateLimit int `json:"rate_limit,omitempty" validate:"gte=0"` // Audit requests per minute per client
	RateBurst int `json:"rate_burst,omitempty" validate:"gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print boxed summaries
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Country:     country.DefaultCode,
		Format:      FormatJSON,
		Concurrency: DefaultConcurrency,
		Port:        DefaultPort,
		RateLimit:   DefaultRateLimit,
		RateBurst:   DefaultRateBurst,
	}
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
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Country != "" && !country.Default().Has(c.Country) {
		return fmt.Errorf("config error: unknown country %q", c.Country)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Numeric fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateBurst == 0 {
		result.RateBurst = defaults.RateBurst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
