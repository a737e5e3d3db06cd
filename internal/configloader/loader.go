// Package configloader resolves the effective linebuf configuration
// from config files and environment variables.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/linebuf/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, if any.
	LoadedFrom string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (LINEBUF_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.linebuf.yml upward search)
//  4. Defaults
//
// CLI flags outrank all of these; the command layer applies them after
// Load returns.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()
	result := &LoadResult{Config: cfg}

	path := opts.ExplicitPath
	if path == "" {
		discovered, err := DiscoverProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		merge(cfg, fileCfg)
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		applyEnv(cfg)
	}

	if err := cfg.Validate(); err != nil {
		if result.LoadedFrom != "" {
			return nil, fmt.Errorf("%s: %w", result.LoadedFrom, err)
		}
		return nil, err
	}

	return result, nil
}

func loadFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies every non-empty field of src onto dst.
func merge(dst, src *config.Config) {
	if src.Backend != "" {
		dst.Backend = src.Backend
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
}
