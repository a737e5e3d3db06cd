package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linebuf/internal/logging"
	"github.com/yaklabco/linebuf/pkg/editscript"
	"github.com/yaklabco/linebuf/pkg/fsutil"
	"github.com/yaklabco/linebuf/pkg/textbuf"
)

type applyFlags struct {
	script  string
	backend string
	output  string
	dryRun  bool
	force   bool
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply [flags] FILE",
		Short: "Apply an edit script to a text file",
		Long:  applyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.script, "script", "s", "", "path to the YAML edit script")
	cmd.Flags().StringVar(&flags.backend, "backend", "",
		"buffer backend: piecetable or array (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: edit in place)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the result to stdout instead of writing")
	cmd.Flags().BoolVar(&flags.force, "force", false,
		"write even if the file changed on disk after it was read")

	_ = cmd.MarkFlagRequired("script")

	return cmd
}

const applyLongDescription = `Apply a YAML edit script to a text file.

An edit script is an ordered list of line operations. Each edit names an
operation (add, edit, remove), a zero-based line number, and for add and
edit the new text. Edits run in order against the in-memory buffer; the
file is written once, atomically, after the whole script succeeds.

Examples:
  linebuf apply notes.txt -s edits.yml             # Edit in place
  linebuf apply notes.txt -s edits.yml -o out.txt  # Write elsewhere
  linebuf apply notes.txt -s edits.yml --dry-run   # Preview on stdout
  linebuf apply notes.txt -s edits.yml --backend array`

func runApply(cmd *cobra.Command, path string, flags *applyFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	buf, err := textbuf.New(textbuf.Backend(cfg.Backend))
	if err != nil {
		return err
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	buf.Load(string(content))

	logger.Debug("loaded document",
		logging.FieldPath, path,
		logging.FieldBackend, cfg.Backend,
		logging.FieldLines, buf.LineCount(),
		logging.FieldBytes, buf.Len(),
	)

	script, err := editscript.LoadFile(flags.script)
	if err != nil {
		return err
	}

	if err := script.Apply(buf); err != nil {
		return fmt.Errorf("apply %s: %w", flags.script, err)
	}

	if flags.dryRun {
		fmt.Fprint(cmd.OutOrStdout(), buf.Serialize())
		return nil
	}

	out := flags.output
	if out == "" {
		out = path
	}

	// Editing in place: refuse to clobber concurrent changes.
	if out == path && !flags.force {
		modified, err := fsutil.CheckModified(ctx, info)
		if err != nil {
			return fmt.Errorf("check %s: %w", path, err)
		}
		if modified {
			return fmt.Errorf("%s changed on disk after it was read; use --force to overwrite", path)
		}
	}

	if err := buf.WriteFile(ctx, out); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("applied edit script",
		logging.FieldScript, flags.script,
		logging.FieldEdits, len(script.Edits),
		logging.FieldOutput, out,
		logging.FieldLines, buf.LineCount(),
	)

	return nil
}
