package textbuf

// lineIndex maps a 0-based line number to the logical byte offset of
// the line's first character. Line numbers are dense and contiguous,
// so an ordered slice beats any keyed mapping here. Invariants:
// entry 0 is offset 0, entries are strictly increasing, and the entry
// count equals the line count. An empty document has no entries.
type lineIndex []int

// buildLineIndex scans text once and records the offset following each
// line terminator. A terminator at the very end of the text closes the
// final line rather than opening a new one.
func buildLineIndex(text string) lineIndex {
	if len(text) == 0 {
		return nil
	}

	index := lineIndex{0}
	for i := 0; i < len(text); i++ {
		if text[i] == terminator && i+1 < len(text) {
			index = append(index, i+1)
		}
	}
	return index
}
