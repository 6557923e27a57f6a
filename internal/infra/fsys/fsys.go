// Package fsys implements the filesystem port against the host filesystem.
package fsys

import (
	"fmt"
	"os"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure FS implements domain.Filesystem.
var _ domain.Filesystem = (*FS)(nil)

// FS performs file checks and deletions on the host filesystem.
type FS struct{}

// New creates a new FS.
func New() *FS {
	return &FS{}
}

// Exists reports whether a file exists at path.
func (f *FS) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}
	return true, nil
}

// Remove deletes the file at path. An already absent file is not an error.
// Windows reports read-only files as a permission error, so the attribute
// is cleared and the delete retried once.
func (f *FS) Remove(path string) error {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	if !os.IsPermission(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	if chmodErr := os.Chmod(path, 0o600); chmodErr != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
