// Package editscript defines a YAML format for scripted line edits and
// applies a script to any TextBuffer.
//
// Script shape:
//
//	edits:
//	  - op: add        # add | edit | remove
//	    line: 1
//	    text: "inserted line"
//	  - op: remove
//	    line: 0
package editscript

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/linebuf/pkg/textbuf"
)

// ErrUnknownOp indicates an edit with an unrecognized operation name.
var ErrUnknownOp = errors.New("unknown edit operation")

// Op names a TextBuffer line operation.
type Op string

// Supported operations.
const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpRemove Op = "remove"
)

// Edit is one scripted line operation. Text is ignored for remove.
type Edit struct {
	Op   Op     `yaml:"op"`
	Line int    `yaml:"line"`
	Text string `yaml:"text,omitempty"`
}

// Script is an ordered sequence of edits applied to one document.
type Script struct {
	Edits []Edit `yaml:"edits"`
}

// Parse decodes and validates an edit script. Line numbers are only
// checked for non-negativity here; whether a line exists depends on
// the document and is reported by Apply.
func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse edit script: %w", err)
	}

	for i, e := range script.Edits {
		switch e.Op {
		case OpAdd, OpEdit, OpRemove:
		default:
			return nil, fmt.Errorf("edit %d: %w: %q", i+1, ErrUnknownOp, e.Op)
		}
		if e.Line < 0 {
			return nil, fmt.Errorf("edit %d: negative line number %d", i+1, e.Line)
		}
	}

	return &script, nil
}

// LoadFile reads and parses an edit script from path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edit script %s: %w", path, err)
	}
	return Parse(data)
}

// Apply runs the script's edits against buf in order. On failure the
// error names the offending edit; edits before it have been applied,
// edits after it have not (each single edit is all-or-nothing on the
// buffer).
func (s *Script) Apply(buf textbuf.TextBuffer) error {
	for i, e := range s.Edits {
		var err error
		switch e.Op {
		case OpAdd:
			err = buf.AddLine(e.Line, e.Text)
		case OpEdit:
			err = buf.EditLine(e.Line, e.Text)
		case OpRemove:
			err = buf.RemoveLine(e.Line)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
		}
		if err != nil {
			return fmt.Errorf("edit %d (%s line %d): %w", i+1, e.Op, e.Line, err)
		}
	}
	return nil
}
