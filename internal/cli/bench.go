package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/linebuf/internal/logging"
	"github.com/yaklabco/linebuf/internal/ui/pretty"
	"github.com/yaklabco/linebuf/pkg/editscript"
	"github.com/yaklabco/linebuf/pkg/fsutil"
	"github.com/yaklabco/linebuf/pkg/textbuf"
)

// ErrBackendMismatch is returned when the two backends produce different
// documents from the same workload.
var ErrBackendMismatch = errors.New("backend results diverged")

// defaultBenchEdits is the workload size when --edits is not given.
const defaultBenchEdits = 1000

type benchFlags struct {
	edits int
	seed  int64
}

func newBenchCommand() *cobra.Command {
	flags := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench [flags] FILE",
		Short: "Race the piece table and array backends on one workload",
		Long:  benchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.edits, "edits", defaultBenchEdits, "number of edits in the workload")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "seed for the pseudo-random edit sequence")

	return cmd
}

const benchLongDescription = `Race the piece table and array backends against the same workload.

The document is loaded into both backends and an identical pseudo-random
edit sequence, derived from --seed, is applied to each. The final
documents must match byte for byte; the run fails otherwise.

Examples:
  linebuf bench notes.txt                  # 1000 edits, fixed seed
  linebuf bench notes.txt --edits 100000   # Heavier workload
  linebuf bench notes.txt --seed 7         # Different edit sequence`

func runBench(cmd *cobra.Command, path string, flags *benchFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	if flags.edits < 1 {
		return fmt.Errorf("--edits must be positive, got %d", flags.edits)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	// Count starting lines so every generated edit stays in range.
	counter := textbuf.NewArrayBuffer()
	counter.Load(string(content))
	workload := benchWorkload(counter.LineCount(), flags.edits, flags.seed)

	logger.Debug("generated workload",
		logging.FieldEdits, len(workload),
		logging.FieldSeed, flags.seed,
		logging.FieldLines, counter.LineCount(),
	)

	backends := []textbuf.Backend{textbuf.BackendPieceTable, textbuf.BackendArray}
	outputs := make([]string, len(backends))
	rows := make([]pretty.BenchRow, 0, len(backends))

	for i, backend := range backends {
		buf, err := textbuf.New(backend)
		if err != nil {
			return err
		}
		buf.Load(string(content))

		script := &editscript.Script{Edits: workload}

		start := time.Now()
		if err := script.Apply(buf); err != nil {
			return fmt.Errorf("bench %s: %w", backend, err)
		}
		total := time.Since(start)

		serStart := time.Now()
		outputs[i] = buf.Serialize()
		serialize := time.Since(serStart)

		pieces := -1
		if table, ok := buf.(*textbuf.PieceTableBuffer); ok {
			pieces = table.PieceCount()
		}

		rows = append(rows, pretty.BenchRow{
			Backend:   string(backend),
			Edits:     len(workload),
			Total:     total,
			PerEdit:   total / time.Duration(len(workload)),
			Serialize: serialize,
			Pieces:    pieces,
		})

		logger.Debug("bench run finished",
			logging.FieldBackend, string(backend),
			logging.FieldDuration, total,
			logging.FieldLines, buf.LineCount(),
		)
	}

	if outputs[0] != outputs[1] {
		return fmt.Errorf("%w: %s and %s produced different documents",
			ErrBackendMismatch, backends[0], backends[1])
	}

	stdout := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd, cfg), stdout))
	table := pretty.NewBenchTable(styles, pretty.TerminalWidth(stdout))
	fmt.Fprint(stdout, table.Render(rows))

	return nil
}

// benchWorkload builds a deterministic edit sequence. Line numbers are
// drawn against a simulated line count so every edit is in range when
// the sequence is replayed in order.
func benchWorkload(lines, edits int, seed int64) []editscript.Edit {
	rng := rand.New(rand.NewSource(seed))
	out := make([]editscript.Edit, 0, edits)
	count := lines

	for len(out) < edits {
		op := rng.Intn(3)
		switch {
		case op == 0 || count == 0:
			out = append(out, editscript.Edit{
				Op:   editscript.OpAdd,
				Line: rng.Intn(count + 1),
				Text: fmt.Sprintf("bench add %d", len(out)),
			})
			count++
		case op == 1:
			out = append(out, editscript.Edit{
				Op:   editscript.OpEdit,
				Line: rng.Intn(count),
				Text: fmt.Sprintf("bench edit %d", len(out)),
			})
		default:
			out = append(out, editscript.Edit{
				Op:   editscript.OpRemove,
				Line: rng.Intn(count),
			})
			count--
		}
	}

	return out
}
