package textbuf

import (
	"context"
	"strings"

	"github.com/yaklabco/linebuf/pkg/fsutil"
)

// ArrayBuffer is the baseline strategy: lines stored directly in a
// slice, each retaining its terminator. Edits are simple but inserting
// or removing a line shifts everything after it, costing O(line count)
// per edit on large documents.
type ArrayBuffer struct {
	lines []string
}

// NewArrayBuffer creates an empty array buffer.
func NewArrayBuffer() *ArrayBuffer {
	return &ArrayBuffer{}
}

// Load replaces the whole document with text.
func (b *ArrayBuffer) Load(text string) {
	b.lines = splitLines(text)
}

// ReadFile loads the document from the file at path.
func (b *ArrayBuffer) ReadFile(ctx context.Context, path string) error {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	b.Load(string(content))
	return nil
}

// WriteFile writes the serialized document to path atomically.
func (b *ArrayBuffer) WriteFile(ctx context.Context, path string) error {
	return fsutil.WriteAtomic(ctx, path, []byte(b.Serialize()), 0)
}

// Serialize concatenates the lines in order.
func (b *ArrayBuffer) Serialize() string {
	return strings.Join(b.lines, "")
}

// LineCount returns the number of lines in the document.
func (b *ArrayBuffer) LineCount() int { return len(b.lines) }

// Len returns the document length in bytes.
func (b *ArrayBuffer) Len() int {
	n := 0
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// EditLine replaces the content of an existing line, normalized to end
// with a terminator.
func (b *ArrayBuffer) EditLine(line int, text string) error {
	if line < 0 || line >= len(b.lines) {
		return rangeError("edit", line, len(b.lines))
	}
	b.lines[line] = ensureTerminated(text)
	return nil
}

// AddLine inserts text as a new line before the given line number,
// shifting all subsequent lines. line may equal LineCount(), which
// appends; an unterminated final line gains its terminator first so
// the two lines cannot merge, matching the piece table's behavior.
func (b *ArrayBuffer) AddLine(line int, text string) error {
	if line < 0 || line > len(b.lines) {
		return rangeError("add", line, len(b.lines))
	}

	next := make([]string, 0, len(b.lines)+1)
	next = append(next, b.lines[:line]...)
	next = append(next, ensureTerminated(text))
	next = append(next, b.lines[line:]...)
	if line == len(b.lines) && line > 0 {
		next[line-1] = ensureTerminated(next[line-1])
	}

	b.lines = next
	return nil
}

// RemoveLine deletes the given line, shifting subsequent lines.
func (b *ArrayBuffer) RemoveLine(line int) error {
	if line < 0 || line >= len(b.lines) {
		return rangeError("remove", line, len(b.lines))
	}

	next := make([]string, 0, len(b.lines)-1)
	next = append(next, b.lines[:line]...)
	next = append(next, b.lines[line+1:]...)

	b.lines = next
	return nil
}
