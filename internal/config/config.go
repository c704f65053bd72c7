// Package config handles configuration for the rewind CLI and demo.
//
// Settings come from an optional YAML file with environment variable
// overrides applied on top, so REWIND_* variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dshills/rewind"
)

// ErrInvalidLogLevel is returned when log_level is not one of
// debug, info, warn, error.
var ErrInvalidLogLevel = errors.New("config: invalid log level")

// Config holds the CLI and demo settings.
type Config struct {
	// Capacity bounds each history stack.
	Capacity int `yaml:"capacity" env:"REWIND_CAPACITY"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"REWIND_LOG_LEVEL"`

	// LogFile receives slog output. Empty discards logs, which keeps
	// the TUI's terminal clean.
	LogFile string `yaml:"log_file" env:"REWIND_LOG_FILE"`

	// Document is the default JSON file the demo opens.
	Document string `yaml:"document" env:"REWIND_DOCUMENT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: rewind.DefaultCapacity,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path (missing file means defaults), applies
// environment overrides, and validates the result. An empty path skips
// the file and still applies the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values and normalizes the capacity.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Capacity <= 0 {
		c.Capacity = rewind.DefaultCapacity
	}
	return nil
}
