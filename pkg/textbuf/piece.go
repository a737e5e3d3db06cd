package textbuf

// pieceSource identifies which backing buffer a piece references.
type pieceSource uint8

const (
	sourceOriginal pieceSource = iota
	sourceAdd
)

// piece references a contiguous run of document text inside one of the
// two backing buffers. Invariant: length > 0 for every piece held in a
// piece list (an empty document has an empty list instead).
type piece struct {
	src    pieceSource
	start  int
	length int
}

// splitPieces ensures a piece boundary exists at the given logical
// offset and returns the index of the first piece starting there.
// Offsets already on a boundary (including 0 and the document end)
// require no split; an interior offset replaces the containing piece
// with two halves covering the same range. Zero-length pieces are
// never produced.
//
// The returned slice may alias the input when no split was needed, so
// callers must copy into a fresh slice before publishing a mutation.
func splitPieces(pieces []piece, offset int) ([]piece, int) {
	cur := 0
	for i, p := range pieces {
		if offset == cur {
			return pieces, i
		}
		if offset < cur+p.length {
			k := offset - cur
			next := make([]piece, 0, len(pieces)+1)
			next = append(next, pieces[:i]...)
			next = append(next,
				piece{src: p.src, start: p.start, length: k},
				piece{src: p.src, start: p.start + k, length: p.length - k},
			)
			next = append(next, pieces[i+1:]...)
			return next, i + 1
		}
		cur += p.length
	}
	return pieces, len(pieces)
}

// coalesce merges adjacent pieces that reference contiguous ranges of
// the same backing buffer, bounding piece-list growth under repeated
// localized edits. The input slice is modified in place and must not
// be shared.
func coalesce(pieces []piece) []piece {
	if len(pieces) < 2 {
		return pieces
	}

	out := pieces[:1]
	for _, p := range pieces[1:] {
		last := &out[len(out)-1]
		if p.src == last.src && p.start == last.start+last.length {
			last.length += p.length
			continue
		}
		out = append(out, p)
	}
	return out
}
