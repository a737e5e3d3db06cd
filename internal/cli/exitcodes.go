package cli

import (
	"errors"

	"github.com/yaklabco/linebuf/pkg/config"
	"github.com/yaklabco/linebuf/pkg/editscript"
	"github.com/yaklabco/linebuf/pkg/fsutil"
	"github.com/yaklabco/linebuf/pkg/textbuf"
)

// Exit codes for linebuf, following BSD sysexits where one fits.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates bad input data: an edit outside the
	// document's line range or an invalid configuration value.
	ExitDataError = 65

	// ExitInternalError indicates an internal error, such as the two
	// backends disagreeing on a benchmark result.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps a command error to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, textbuf.ErrUnknownBackend),
		errors.Is(err, editscript.ErrUnknownOp):
		return ExitInvalidUsage
	case errors.Is(err, textbuf.ErrLineOutOfRange),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitDataError
	case errors.Is(err, ErrBackendMismatch):
		return ExitInternalError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}
