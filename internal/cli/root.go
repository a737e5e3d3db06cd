// Package cli provides the Cobra command structure for linebuf.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linebuf/internal/configloader"
	"github.com/yaklabco/linebuf/internal/logging"
	"github.com/yaklabco/linebuf/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root linebuf command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "linebuf",
		Short: "A line-addressable text buffer toolkit",
		Long: `linebuf edits text files line by line.

Documents are loaded into a piece table: the original file contents stay
immutable while edits accumulate in an append-only buffer, so inserting or
removing a line never rewrites the rest of the document. A plain
array-of-lines backend is available for comparison, and the bench command
races the two backends against an identical edit workload.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// commandContext returns the command's context, falling back to
// context.Background when Execute was called without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the effective configuration for a subcommand,
// honoring the root command's --config persistent flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	if result.LoadedFrom != "" {
		logging.Default().Debug("loaded configuration", logging.FieldPath, result.LoadedFrom)
	}

	return result.Config, nil
}

// colorMode returns the effective color mode: the --color flag when the
// user set it, the configured value otherwise.
func colorMode(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("color") {
		if mode, err := cmd.Flags().GetString("color"); err == nil {
			return mode
		}
	}
	return cfg.Color
}
