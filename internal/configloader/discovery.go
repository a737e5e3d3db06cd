package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// projectConfigNames are the file names probed during upward discovery,
// in priority order within one directory.
var projectConfigNames = []string{".linebuf.yml", ".linebuf.yaml"}

// DiscoverProjectConfig searches startDir and its ancestors for a
// project config file and returns the first hit, or "" when none
// exists.
func DiscoverProjectConfig(ctx context.Context, startDir string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("discover config: %w", ctx.Err())
	default:
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	for {
		for _, name := range projectConfigNames {
			candidate := filepath.Join(dir, name)
			if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
