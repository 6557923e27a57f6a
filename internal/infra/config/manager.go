package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager writes the uninstaller config file.
type Manager struct {
	confDir string
}

// NewManager creates a Manager rooted at the default config directory.
func NewManager() *Manager {
	return &Manager{confDir: defaultConfigDir()}
}

// NewManagerWithDir creates a Manager with a custom config directory.
// This is useful for testing.
func NewManagerWithDir(confDir string) *Manager {
	return &Manager{confDir: confDir}
}

// Init writes a default config file and returns its path.
// Returns domain.ErrConfigExists if the file is already present.
func (m *Manager) Init() (string, error) {
	if m.confDir == "" {
		return "", errors.New("config directory could not be resolved")
	}
	path := filepath.Join(m.confDir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", domain.ErrConfigExists
	}

	content, err := toml.Marshal(domain.NewDefaultConfig())
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.MkdirAll(m.confDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := writeAtomic(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes content to path via a temp file and rename.
func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
