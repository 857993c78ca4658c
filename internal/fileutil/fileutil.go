// Package fileutil holds file permission constants and small filesystem helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadableByAll is the file permission mode for generated headers and
// downloaded inputs, which build tools and other users need to read.
const ReadableByAll os.FileMode = 0o644

// DirMode is the permission mode for directories created by the generator.
const DirMode os.FileMode = 0o755

// Exists reports whether a file or directory exists at path.
// Errors other than "does not exist" are returned so callers do not mistake
// a permission problem for a cache miss.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// RejectSymlink returns an error if path is an existing symlink.
func RejectSymlink(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fileutil: checking %s: %w", path, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("fileutil: refusing to write to symlink: %s", path)
	}
	return nil
}
