package textbuf

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations. I/O failures are propagated
// from pkg/fsutil wrapped with operation context.
var (
	// ErrLineOutOfRange indicates a line number outside the valid
	// bound for the requested operation.
	ErrLineOutOfRange = errors.New("line number out of range")

	// ErrUnknownBackend indicates an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown backend")
)

func rangeError(op string, line, count int) error {
	return fmt.Errorf("%s line %d (buffer has %d lines): %w", op, line, count, ErrLineOutOfRange)
}

func unknownBackendError(name string) error {
	return fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownBackend, name, BackendPieceTable, BackendArray)
}
