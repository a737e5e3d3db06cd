package pretty

import (
	"fmt"
	"strings"
	"time"
)

// Table formatting constants.
const (
	tablePadding   = 2
	heavySeparator = "="
	lightSeparator = "-"
	noValue        = "-"
)

// BenchRow holds one backend's measurements from a benchmark run.
type BenchRow struct {
	Backend   string
	Edits     int
	Total     time.Duration
	PerEdit   time.Duration
	Serialize time.Duration

	// Pieces is the piece-list length after the run; negative means
	// the backend has no piece list.
	Pieces int
}

// BenchTable formats backend benchmark results as a styled table.
type BenchTable struct {
	styles    *Styles
	termWidth int
}

// NewBenchTable creates a new benchmark table formatter.
func NewBenchTable(styles *Styles, termWidth int) *BenchTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &BenchTable{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Render formats the rows as a table. The row with the lowest total
// time is highlighted as the winner.
func (t *BenchTable) Render(rows []BenchRow) string {
	if len(rows) == 0 {
		return ""
	}

	headers := []string{"BACKEND", "EDITS", "TOTAL", "PER EDIT", "SERIALIZE", "PIECES"}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		pieces := noValue
		if row.Pieces >= 0 {
			pieces = fmt.Sprintf("%d", row.Pieces)
		}
		cells = append(cells, []string{
			row.Backend,
			fmt.Sprintf("%d", row.Edits),
			row.Total.String(),
			row.PerEdit.String(),
			row.Serialize.String(),
			pieces,
		})
	}

	widths := columnWidths(headers, cells)
	winner := fastestRow(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(headers, widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, row := range cells {
		line := formatCells(row, widths)
		if i == winner {
			line = t.styles.TableWinner.Render(line)
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Dim.Render("lowest total time highlighted"))
	builder.WriteString("\n")

	return builder.String()
}

func (t *BenchTable) formatHeader(headers []string, widths []int) string {
	return t.styles.TableHeader.Render(formatCells(headers, widths))
}

func (t *BenchTable) formatSeparator(widths []int, sep string) string {
	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}
	total -= tablePadding
	if total > t.termWidth {
		total = t.termWidth
	}
	return t.styles.TableSeparator.Render(strings.Repeat(sep, total))
}

func formatCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", tablePadding)), " ")
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func fastestRow(rows []BenchRow) int {
	winner := 0
	for i, row := range rows {
		if row.Total < rows[winner].Total {
			winner = i
		}
	}
	return winner
}
