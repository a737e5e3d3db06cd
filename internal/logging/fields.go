package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldScript = "script"

	// Buffer fields.
	FieldBackend = "backend"
	FieldLines   = "lines"
	FieldBytes   = "bytes"
	FieldPieces  = "pieces"
	FieldEdits   = "edits"

	// Benchmark fields.
	FieldSeed     = "seed"
	FieldDuration = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
