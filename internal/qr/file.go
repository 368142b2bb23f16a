package qr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile writes code as a PNG at path. The image is written to a temporary
// file next to path and renamed into place, so a failed write never leaves a
// truncated PNG behind. An existing file must be writable and keeps its mode.
// Every failure wraps ErrIOFailure.
func WriteFile(path string, code *Code) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrIOFailure)
	}
	mode, err := targetMode(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".qrpanels-*.png")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := code.WritePNG(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: encode %s: %w", ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return nil
}

// targetMode returns the mode for the file at path: 0644 for a new file, the
// current permissions for an existing one. Opening for write without
// truncation checks permissions the way an in-place write would.
func targetMode(path string) (os.FileMode, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0o644, nil
	}
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return fi.Mode().Perm(), nil
}
