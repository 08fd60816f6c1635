package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Export writes the embedded library to path so it can be edited for a new
// deal. An existing file is left alone unless overwrite is set.
func Export(path string, overwrite bool) error {
	if path == "" {
		return fmt.Errorf("export path: %w", domain.ErrInvalidInput)
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, domain.ErrAlreadyExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	if err := os.WriteFile(path, defaultLibrary, 0600); err != nil {
		return fmt.Errorf("write library: %w", err)
	}
	return nil
}
