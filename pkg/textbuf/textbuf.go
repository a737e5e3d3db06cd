// Package textbuf provides a line-addressable text buffer behind two
// interchangeable storage strategies: a piece table (PieceTableBuffer)
// and a plain array of lines (ArrayBuffer). Both implement the same
// TextBuffer capability set so call sites can switch strategy without
// changing code, and so the cost tradeoffs of the two representations
// can be benchmarked against identical edit sequences.
//
// Line numbers are 0-based. The line terminator is a single '\n' and
// offsets are byte offsets. Every line created or edited through the
// buffer is normalized to end with a terminator; the final line of a
// loaded document keeps the source text's trailing-terminator presence
// or absence until an edit touches the document end.
package textbuf

import "context"

// TextBuffer is the capability set shared by both storage strategies.
type TextBuffer interface {
	// Load replaces the whole document with text.
	Load(text string)

	// ReadFile loads the document from the file at path.
	ReadFile(ctx context.Context, path string) error

	// WriteFile writes the serialized document to path atomically.
	WriteFile(ctx context.Context, path string) error

	// EditLine replaces the content of an existing line.
	EditLine(line int, text string) error

	// AddLine inserts a new line before the given line number.
	// line may equal LineCount(), which appends.
	AddLine(line int, text string) error

	// RemoveLine deletes an existing line.
	RemoveLine(line int) error

	// Serialize returns the full document as one string.
	Serialize() string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// Len returns the document length in bytes.
	Len() int
}

// Backend names a TextBuffer storage strategy.
type Backend string

// Available backends.
const (
	BackendPieceTable Backend = "piecetable"
	BackendArray      Backend = "array"
)

// New creates an empty TextBuffer using the given backend.
func New(backend Backend) (TextBuffer, error) {
	switch backend {
	case BackendPieceTable:
		return NewPieceTableBuffer(), nil
	case BackendArray:
		return NewArrayBuffer(), nil
	default:
		return nil, unknownBackendError(string(backend))
	}
}
