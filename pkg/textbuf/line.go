package textbuf

import "strings"

// terminator is the single line-terminator character of the document
// format. Foreign line endings are a caller concern.
const terminator byte = '\n'

// ensureTerminated normalizes a line so it ends with a terminator.
func ensureTerminated(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// splitLines splits text into lines, each retaining its terminator.
// A trailing fragment without a terminator is kept as the final line.
func splitLines(text string) []string {
	if len(text) == 0 {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == terminator {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}
