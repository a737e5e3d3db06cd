package configloader

import (
	"os"

	"github.com/yaklabco/linebuf/pkg/config"
)

// Environment variables recognized by the loader.
const (
	EnvBackend  = "LINEBUF_BACKEND"
	EnvLogLevel = "LINEBUF_LOG_LEVEL"
	EnvColor    = "LINEBUF_COLOR"
)

// applyEnv overrides cfg fields from the environment. Unset variables
// leave the field untouched; invalid values surface later through
// Config.Validate rather than being silently dropped.
func applyEnv(cfg *config.Config) {
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = v
	}
}
