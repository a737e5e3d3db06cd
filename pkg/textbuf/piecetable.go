package textbuf

import (
	"context"
	"strings"

	"github.com/yaklabco/linebuf/pkg/fsutil"
)

// PieceTableBuffer stores the document as an ordered list of pieces
// referencing two backing buffers: the immutable original text and an
// append-only add buffer holding all inserted text. Edits splice the
// piece list instead of shifting document bytes, so the cost of an
// insertion or deletion is bounded by the piece count, not the
// document size.
//
// Because the add buffer only ever grows and existing bytes are never
// rewritten, a piece's (start, length) stays valid forever once
// created. Every mutation builds fresh piece and line-index slices and
// publishes them together after all computation, so a failed operation
// leaves the buffer untouched and a reader holding the old slices
// keeps a consistent snapshot.
type PieceTableBuffer struct {
	original string
	add      []byte
	pieces   []piece
	index    lineIndex
	length   int
}

// NewPieceTableBuffer creates an empty piece table buffer.
func NewPieceTableBuffer() *PieceTableBuffer {
	return &PieceTableBuffer{}
}

// Load replaces the whole document with text. The text becomes the new
// original buffer, covered by a single piece, and the add buffer is
// reset.
func (b *PieceTableBuffer) Load(text string) {
	b.original = text
	b.add = nil
	b.pieces = nil
	if len(text) > 0 {
		b.pieces = []piece{{src: sourceOriginal, start: 0, length: len(text)}}
	}
	b.index = buildLineIndex(text)
	b.length = len(text)
}

// ReadFile loads the document from the file at path.
func (b *PieceTableBuffer) ReadFile(ctx context.Context, path string) error {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}
	b.Load(string(content))
	return nil
}

// WriteFile writes the serialized document to path using an atomic
// temp-file-then-rename, so a failed write never corrupts the target.
func (b *PieceTableBuffer) WriteFile(ctx context.Context, path string) error {
	return fsutil.WriteAtomic(ctx, path, []byte(b.Serialize()), 0)
}

// Serialize walks the piece list in order and resolves each piece
// against its backing buffer.
func (b *PieceTableBuffer) Serialize() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for _, p := range b.pieces {
		if p.src == sourceAdd {
			sb.Write(b.add[p.start : p.start+p.length])
		} else {
			sb.WriteString(b.original[p.start : p.start+p.length])
		}
	}
	return sb.String()
}

// LineCount returns the number of lines in the document.
func (b *PieceTableBuffer) LineCount() int { return len(b.index) }

// Len returns the document length in bytes.
func (b *PieceTableBuffer) Len() int { return b.length }

// PieceCount returns the current piece-list length. Exposed for tests
// and benchmarks observing piece-list growth and coalescing.
func (b *PieceTableBuffer) PieceCount() int { return len(b.pieces) }

// AddBufferLen returns the add-buffer length in bytes. The add buffer
// is append-only, so this value never decreases across edits on one
// document.
func (b *PieceTableBuffer) AddBufferLen() int { return len(b.add) }

// AddLine inserts text as a new line before the given line number.
// line may equal LineCount(), which appends after the last line. The
// text is normalized to end with a terminator. When appending after an
// unterminated final line, the missing terminator is supplied first so
// the two lines cannot merge; the injected terminator travels inside
// the same added piece, keeping the operation a single splice.
func (b *PieceTableBuffer) AddLine(line int, text string) error {
	count := len(b.index)
	if line < 0 || line > count {
		return rangeError("add", line, count)
	}
	text = ensureTerminated(text)

	target := b.length
	if line < count {
		target = b.index[line]
	}

	joiner := 0
	if line == count && count > 0 && !b.endsWithTerminator() {
		text = "\n" + text
		joiner = 1
	}

	addStart := len(b.add)
	b.add = append(b.add, text...)

	pieces, at := splitPieces(b.pieces, target)
	next := make([]piece, 0, len(pieces)+1)
	next = append(next, pieces[:at]...)
	next = append(next, piece{src: sourceAdd, start: addStart, length: len(text)})
	next = append(next, pieces[at:]...)

	index := make(lineIndex, 0, count+1)
	index = append(index, b.index[:line]...)
	index = append(index, target+joiner)
	for _, off := range b.index[line:] {
		index = append(index, off+len(text))
	}

	b.pieces = coalesce(next)
	b.index = index
	b.length += len(text)
	return nil
}

// RemoveLine deletes the given line, terminator included. The piece
// list is split at both line boundaries and the covered pieces are
// dropped.
func (b *PieceTableBuffer) RemoveLine(line int) error {
	count := len(b.index)
	if line < 0 || line >= count {
		return rangeError("remove", line, count)
	}

	start := b.index[line]
	end := b.length
	if line+1 < count {
		end = b.index[line+1]
	}

	pieces, from := splitPieces(b.pieces, start)
	pieces, to := splitPieces(pieces, end)

	next := make([]piece, 0, len(pieces))
	next = append(next, pieces[:from]...)
	next = append(next, pieces[to:]...)

	removed := end - start
	index := make(lineIndex, 0, count-1)
	index = append(index, b.index[:line]...)
	for _, off := range b.index[line+1:] {
		index = append(index, off-removed)
	}

	b.pieces = coalesce(next)
	b.index = index
	b.length -= removed
	return nil
}

// EditLine replaces the content of an existing line as one atomic
// transaction: the replacement piece is spliced over the whole line
// range in a single piece-list rewrite, so no remove-then-add
// intermediate state ever exists on the buffer.
func (b *PieceTableBuffer) EditLine(line int, text string) error {
	count := len(b.index)
	if line < 0 || line >= count {
		return rangeError("edit", line, count)
	}
	text = ensureTerminated(text)

	start := b.index[line]
	end := b.length
	if line+1 < count {
		end = b.index[line+1]
	}

	addStart := len(b.add)
	b.add = append(b.add, text...)

	pieces, from := splitPieces(b.pieces, start)
	pieces, to := splitPieces(pieces, end)

	next := make([]piece, 0, len(pieces)+1)
	next = append(next, pieces[:from]...)
	next = append(next, piece{src: sourceAdd, start: addStart, length: len(text)})
	next = append(next, pieces[to:]...)

	delta := len(text) - (end - start)
	index := make(lineIndex, 0, count)
	index = append(index, b.index[:line+1]...)
	for _, off := range b.index[line+1:] {
		index = append(index, off+delta)
	}

	b.pieces = coalesce(next)
	b.index = index
	b.length += delta
	return nil
}

// endsWithTerminator reports whether the document's last byte is a
// line terminator. Only the final piece needs inspecting.
func (b *PieceTableBuffer) endsWithTerminator() bool {
	if len(b.pieces) == 0 {
		return false
	}
	p := b.pieces[len(b.pieces)-1]
	if p.src == sourceAdd {
		return b.add[p.start+p.length-1] == terminator
	}
	return b.original[p.start+p.length-1] == terminator
}
