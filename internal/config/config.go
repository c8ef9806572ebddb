// Package config provides configuration loading and defaults for colorconv.
//
// Configuration is loaded from a TOML file in the user's data directory and
// controls output formatting, the policy for unparsable hex values, remote
// fetch behavior, and logging.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/warp-core/colorconv/internal/output"
	"github.com/warp-core/colorconv/internal/paths"
)

// Invalid-hex policies for records whose hex token cannot be decoded.
const (
	// InvalidHexSkip drops the record entirely.
	InvalidHexSkip = "skip"
	// InvalidHexEmpty emits the record name with no channel values.
	InvalidHexEmpty = "empty"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level application configuration.
type Config struct {
	// Output holds output formatting settings.
	Output OutputConfig `toml:"output"`
	// Fetch holds settings for reading sources over HTTP.
	Fetch FetchConfig `toml:"fetch"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// OutputConfig holds output formatting settings.
type OutputConfig struct {
	// Precision is the number of significant digits used when printing
	// channel fractions.
	Precision int `toml:"precision"`
	// OnInvalidHex selects what to do with a record whose hex value does
	// not decode: "skip" or "empty".
	OnInvalidHex string `toml:"on_invalid_hex"`
}

// FetchConfig holds settings for reading sources over HTTP.
type FetchConfig struct {
	// RetryMax is the number of times a failed request is retried.
	RetryMax int `toml:"retry_max"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `toml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Defaults, Load, Save
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Precision:    6,
			OnInvalidHex: InvalidHexSkip,
		},
		Fetch: FetchConfig{
			RetryMax:       2,
			TimeoutSeconds: 10,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 5,
		},
	}
}

// Load reads the config file from dataDir, applying user values over the
// defaults. A missing file yields the defaults; a malformed or invalid file
// is an error.
func Load(dataDir string) (*Config, error) {
	path := paths.DataDir{Root: dataDir}.Config()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk as TOML using an atomic file write.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return output.WriteRaw(path, buf.Bytes(), 0o644)
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// validLogLevels is the set of accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be in 1..17, got %d", c.Output.Precision)
	}

	switch c.Output.OnInvalidHex {
	case InvalidHexSkip, InvalidHexEmpty:
	default:
		return fmt.Errorf("invalid output.on_invalid_hex %q: must be %q or %q",
			c.Output.OnInvalidHex, InvalidHexSkip, InvalidHexEmpty)
	}

	if c.Fetch.RetryMax < 0 {
		return fmt.Errorf("fetch.retry_max must be >= 0, got %d", c.Fetch.RetryMax)
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0, got %d", c.Fetch.TimeoutSeconds)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn, or error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}

	return nil
}
