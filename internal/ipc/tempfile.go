package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempFilePrefix prefixes the names of files created by CreateTempFile.
const TempFilePrefix = "pipeliner-ipc-"

// CreateTempFile creates an empty IPC file readable only by the owner in dir,
// or in os.TempDir when dir is empty, and returns its absolute path.
func CreateTempFile(dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path, err := filepath.Abs(filepath.Join(dir, TempFilePrefix+uuid.NewString()))
	if err != nil {
		return "", fmt.Errorf("resolve IPC file path: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create IPC file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close IPC file: %w", err)
	}
	return path, nil
}

// Cleanup removes the IPC file at path. A missing file is not an error.
func Cleanup(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove IPC file: %w", err)
	}
	return nil
}
