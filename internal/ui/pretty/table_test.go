package pretty_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linebuf/internal/ui/pretty"
)

func TestBenchTableRender(t *testing.T) {
	styles := pretty.NewStyles(false)
	table := pretty.NewBenchTable(styles, 100)

	rows := []pretty.BenchRow{
		{Backend: "piecetable", Edits: 1000, Total: 2 * time.Millisecond, PerEdit: 2 * time.Microsecond, Serialize: time.Millisecond, Pieces: 42},
		{Backend: "array", Edits: 1000, Total: 9 * time.Millisecond, PerEdit: 9 * time.Microsecond, Serialize: 500 * time.Microsecond, Pieces: -1},
	}

	out := table.Render(rows)
	require.NotEmpty(t, out)

	assert.Contains(t, out, "BACKEND")
	assert.Contains(t, out, "piecetable")
	assert.Contains(t, out, "array")
	assert.Contains(t, out, "42")
	// Array backend has no piece list.
	lines := strings.Split(out, "\n")
	var arrayLine string
	for _, line := range lines {
		if strings.HasPrefix(line, "array") {
			arrayLine = line
		}
	}
	require.NotEmpty(t, arrayLine)
	assert.True(t, strings.HasSuffix(strings.TrimRight(arrayLine, " "), "-"))
}

func TestBenchTableEmpty(t *testing.T) {
	table := pretty.NewBenchTable(pretty.NewStyles(false), 0)
	assert.Empty(t, table.Render(nil))
}
