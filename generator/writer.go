package generator

import (
	"fmt"
	"path/filepath"

	"github.com/erraggy/casetools/internal/fileutil"
)

// WriteFile writes the generated file to the specified path. Parent
// directories are created as needed.
func (f *GeneratedFile) WriteFile(path string) error {
	return fileutil.WriteFileMkdir(path, f.Content)
}

// WriteDir writes the generated file into the specified output
// directory under its own Name. The directory is created if it doesn't
// exist.
func (r *GenerateResult) WriteDir(outputDir string) (string, error) {
	safeName := filepath.Base(r.File.Name)
	if safeName != r.File.Name {
		return "", fmt.Errorf("invalid file name %q: must not contain path separators", r.File.Name)
	}

	path := filepath.Join(outputDir, safeName)
	if err := fileutil.WriteFileMkdir(path, r.File.Content); err != nil {
		return "", err
	}
	return path, nil
}
