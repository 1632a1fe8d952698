// Package atomicfile commits file writes in a single atomic step: stage
// the full contents in a sibling temp file, then rename it over the
// destination. A reader never observes a partially-written cache, result
// or hash file, generalizing the teacher's BufWriter idiom of staging a
// complete write into a buffer before it ever reaches its destination.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write stages data into a temp file in the same directory as path, then
// renames it into place. The rename is atomic on POSIX filesystems, so a
// crash or concurrent reader never sees a truncated or half-written
// file.
func Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("atomicfile: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("atomicfile: write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("atomicfile: chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicfile: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("atomicfile: rename into place: %w", err)
	}
	return nil
}
