package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/pathoverlap/internal/overlap"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	// Algorithm is the overlap algorithm name (default: rolling)
	Algorithm string `yaml:"algorithm"`

	// Color is the color mode: auto, always or never (default: auto)
	Color string `yaml:"color"`

	// LogLevel is the minimum log level: debug, info, warn or error (default: warn)
	LogLevel string `yaml:"logLevel"`

	// FailOnConflict makes scan exit non-zero when any pair overlaps
	FailOnConflict bool `yaml:"failOnConflict"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Algorithm: overlap.DefaultName,
		Color:     ColorAuto,
		LogLevel:  "warn",
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if _, err := overlap.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
