package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zhedye/gl3w-Single-File/internal/fileutil"
)

// WriteFile writes the generated header to path.
// The parent directory is created if it doesn't exist, and an existing
// symlink at path is refused rather than followed.
func (r *GenerateResult) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fileutil.DirMode); err != nil {
		return fmt.Errorf("generator: failed to create directory: %w", err)
	}
	if err := fileutil.RejectSymlink(path); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileutil.ReadableByAll) //nolint:gosec // path is the configured output
	if err != nil {
		return fmt.Errorf("generator: failed to open %s: %w", path, err)
	}
	if _, err := f.Write(r.Content); err != nil {
		_ = f.Close()
		return fmt.Errorf("generator: failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("generator: failed to close %s: %w", path, err)
	}
	return nil
}
