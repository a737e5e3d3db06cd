package editscript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linebuf/pkg/editscript"
	"github.com/yaklabco/linebuf/pkg/textbuf"
)

func TestParse(t *testing.T) {
	t.Run("valid script", func(t *testing.T) {
		data := []byte(`edits:
  - op: add
    line: 1
    text: "x"
  - op: edit
    line: 0
    text: "y"
  - op: remove
    line: 2
`)
		script, err := editscript.Parse(data)
		require.NoError(t, err)
		require.Len(t, script.Edits, 3)
		assert.Equal(t, editscript.OpAdd, script.Edits[0].Op)
		assert.Equal(t, 1, script.Edits[0].Line)
		assert.Equal(t, "x", script.Edits[0].Text)
		assert.Equal(t, editscript.OpRemove, script.Edits[2].Op)
	})

	t.Run("unknown op rejected", func(t *testing.T) {
		data := []byte("edits:\n  - op: insert\n    line: 0\n")
		_, err := editscript.Parse(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, editscript.ErrUnknownOp)
	})

	t.Run("negative line rejected", func(t *testing.T) {
		data := []byte("edits:\n  - op: add\n    line: -1\n")
		_, err := editscript.Parse(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative line")
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		_, err := editscript.Parse([]byte("edits: [unclosed"))
		require.Error(t, err)
	})

	t.Run("empty script is valid", func(t *testing.T) {
		script, err := editscript.Parse([]byte(""))
		require.NoError(t, err)
		assert.Empty(t, script.Edits)
	})
}

func TestApply(t *testing.T) {
	script := &editscript.Script{Edits: []editscript.Edit{
		{Op: editscript.OpAdd, Line: 1, Text: "x"},
		{Op: editscript.OpRemove, Line: 0},
		{Op: editscript.OpEdit, Line: 0, Text: "y"},
	}}

	t.Run("applies in order to both backends", func(t *testing.T) {
		for _, backend := range []textbuf.Backend{textbuf.BackendPieceTable, textbuf.BackendArray} {
			buf, err := textbuf.New(backend)
			require.NoError(t, err)
			buf.Load("a\nb\nc\n")

			require.NoError(t, script.Apply(buf))
			assert.Equal(t, "y\nb\nc\n", buf.Serialize(), "backend %s", backend)
		}
	})

	t.Run("failure names the offending edit", func(t *testing.T) {
		buf := textbuf.NewPieceTableBuffer()
		buf.Load("only\n")

		bad := &editscript.Script{Edits: []editscript.Edit{
			{Op: editscript.OpEdit, Line: 0, Text: "fine"},
			{Op: editscript.OpRemove, Line: 9},
		}}

		err := bad.Apply(buf)
		require.Error(t, err)
		assert.ErrorIs(t, err, textbuf.ErrLineOutOfRange)
		assert.Contains(t, err.Error(), "edit 2")

		// The first edit landed before the failure.
		assert.Equal(t, "fine\n", buf.Serialize())
	})
}
