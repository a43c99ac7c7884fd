// Package fs provides filesystem helpers for locating conversion sources
// and naming outputs.
package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sheetmill/sheetmill"
)

// SourcePaths returns the regular files in dir, sorted by name.
// Subdirectories are skipped, so a previous run's output directory never
// feeds back into the conversion queue.
func SourcePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, sheetmill.Errorf(sheetmill.ENOTFOUND, "source directory not found: %s", dir)
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// ReadSource reads the contents of a source file.
// Returns ENOTFOUND if the file doesn't exist.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, sheetmill.Errorf(sheetmill.ENOTFOUND, "source file not found: %s", path)
		}
		return nil, err
	}
	return data, nil
}
