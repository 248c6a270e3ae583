// Package fileutil provides shared helpers for writing generated files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// OwnerWritableDir is the permission mode for directories created to
// hold generated files.
const OwnerWritableDir os.FileMode = 0o755

// WriteFileMkdir writes data to path with ReadableByAll permissions,
// creating the parent directory first if needed.
func WriteFileMkdir(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), OwnerWritableDir); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
