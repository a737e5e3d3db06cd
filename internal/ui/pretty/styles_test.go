package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/linebuf/internal/ui/pretty"
)

func TestNewStyles(t *testing.T) {
	assert.NotNil(t, pretty.NewStyles(true))
	assert.NotNil(t, pretty.NewStyles(false))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.IsColorEnabled("always", &buf))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("never", &buf))
	})

	t.Run("auto with non-file writer", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("auto", &buf))
	})
}

func TestTerminalWidth(t *testing.T) {
	var buf bytes.Buffer
	// Non-terminal writers get the default width.
	assert.Equal(t, 100, pretty.TerminalWidth(&buf))
}
