package vearch

import (
	"time"
)

// Config holds connection settings for the Vearch cluster.
//
// It is intentionally minimal and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := vearch.DefaultConfig()
//	cfg.BaseURL = "http://localhost:9001"
//	cfg.Timeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := vearch.FromBaseURL("http://localhost:9001").
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Base URL of the Vearch master/router endpoint, e.g. "http://localhost:9001".
	BaseURL string `yaml:"base_url" env:"VEARCH_BASE_URL"`

	// Maximum request duration before timing out. Defaults to 60 seconds.
	Timeout time.Duration `yaml:"timeout" env:"VEARCH_TIMEOUT"`
}

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}

// FromBaseURL returns a default config pre-filled with a specific base URL.
func FromBaseURL(url string) *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}
