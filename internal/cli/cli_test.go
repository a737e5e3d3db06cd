package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/linebuf/internal/cli"
	"github.com/yaklabco/linebuf/pkg/config"
	"github.com/yaklabco/linebuf/pkg/editscript"
	"github.com/yaklabco/linebuf/pkg/fsutil"
	"github.com/yaklabco/linebuf/pkg/textbuf"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "linebuf" {
		t.Errorf("expected Use to be 'linebuf', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	expectedSubcommands := []string{"apply", "bench", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestApplyCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	applyCmd, _, err := cmd.Find([]string{"apply"})
	if err != nil {
		t.Fatalf("apply command not found: %v", err)
	}

	expectedFlags := []string{"script", "backend", "output", "dry-run", "force"}

	for _, flagName := range expectedFlags {
		flag := applyCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on apply command", flagName)
		}
	}
}

func TestBenchCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	benchCmd, _, err := cmd.Find([]string{"bench"})
	if err != nil {
		t.Fatalf("bench command not found: %v", err)
	}

	for _, flagName := range []string{"edits", "seed"} {
		flag := benchCmd.Flags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected flag %q to exist on bench command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	expectedFlags := []string{"debug", "config", "color"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, cli.ExitSuccess},
		{"unknown backend", fmt.Errorf("new: %w", textbuf.ErrUnknownBackend), cli.ExitInvalidUsage},
		{"unknown op", fmt.Errorf("parse: %w", editscript.ErrUnknownOp), cli.ExitInvalidUsage},
		{"line out of range", fmt.Errorf("edit 3: %w", textbuf.ErrLineOutOfRange), cli.ExitDataError},
		{"invalid config", fmt.Errorf("load: %w", config.ErrInvalidConfig), cli.ExitDataError},
		{"backend mismatch", cli.ErrBackendMismatch, cli.ExitInternalError},
		{"file not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"permission denied", fsutil.ErrPermissionDenied, cli.ExitIOError},
		{"generic error", errors.New("boom"), cli.ExitFailure},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeForError(testCase.err); got != testCase.expected {
				t.Errorf("expected exit code %d, got %d", testCase.expected, got)
			}
		})
	}
}
