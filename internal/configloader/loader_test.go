package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linebuf/internal/configloader"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is configured", func(t *testing.T) {
		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: t.TempDir(),
			IgnoreEnv:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, "piecetable", result.Config.Backend)
		assert.Equal(t, "info", result.Config.LogLevel)
		assert.Empty(t, result.LoadedFrom)
	})

	t.Run("project config discovered upward", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		cfgPath := filepath.Join(root, ".linebuf.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("backend: array\n"), 0644))

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: nested,
			IgnoreEnv:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, "array", result.Config.Backend)
		assert.Equal(t, cfgPath, result.LoadedFrom)
		// Unset fields keep their defaults.
		assert.Equal(t, "info", result.Config.LogLevel)
	})

	t.Run("explicit path skips discovery", func(t *testing.T) {
		dir := t.TempDir()
		explicit := filepath.Join(dir, "custom.yml")
		require.NoError(t, os.WriteFile(explicit, []byte("log_level: debug\n"), 0644))

		// A project config that must be ignored.
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linebuf.yml"), []byte("log_level: error\n"), 0644))

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: explicit,
			IgnoreEnv:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, "debug", result.Config.LogLevel)
		assert.Equal(t, explicit, result.LoadedFrom)
	})

	t.Run("environment outranks file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linebuf.yml"), []byte("backend: array\n"), 0644))
		t.Setenv(configloader.EnvBackend, "piecetable")

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, "piecetable", result.Config.Backend)
	})

	t.Run("invalid merged config rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linebuf.yml"), []byte("backend: rope\n"), 0644))

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend")
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   t.TempDir(),
			ExplicitPath: filepath.Join(t.TempDir(), "absent.yml"),
			IgnoreEnv:    true,
		})
		require.Error(t, err)
	})
}

func TestDiscoverProjectConfig(t *testing.T) {
	t.Run("returns empty when nothing found", func(t *testing.T) {
		path, err := configloader.DiscoverProjectConfig(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("prefers .linebuf.yml over .linebuf.yaml", func(t *testing.T) {
		dir := t.TempDir()
		yml := filepath.Join(dir, ".linebuf.yml")
		require.NoError(t, os.WriteFile(yml, []byte("backend: array\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".linebuf.yaml"), []byte("backend: piecetable\n"), 0644))

		path, err := configloader.DiscoverProjectConfig(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, yml, path)
	})
}
