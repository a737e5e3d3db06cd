// Package config defines the linebuf configuration model and its YAML
// serialization.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/linebuf/pkg/textbuf"
)

// ErrInvalidConfig indicates a configuration value outside its valid set.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved linebuf settings.
type Config struct {
	// Backend selects the buffer storage strategy: "piecetable" or "array".
	Backend string `yaml:"backend"`

	// LogLevel sets logging verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color controls styled output: auto, always, never.
	Color string `yaml:"color"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Backend:  string(textbuf.BackendPieceTable),
		LogLevel: "info",
		Color:    "auto",
	}
}

// Validate checks every field against its valid value set.
func (c *Config) Validate() error {
	switch textbuf.Backend(c.Backend) {
	case textbuf.BackendPieceTable, textbuf.BackendArray:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalidConfig, c.Backend)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}

	return nil
}
