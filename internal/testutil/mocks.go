// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// MockPrivilege is a test double for domain.Privilege.
type MockPrivilege struct {
	ElevatedResult bool
	Err            error
}

// Elevated returns the configured result.
func (m *MockPrivilege) Elevated() (bool, error) {
	return m.ElevatedResult, m.Err
}

// MockFilesystem is a test double for domain.Filesystem backed by a path set.
// Fields are ordered to minimize memory padding.
type MockFilesystem struct {
	Files     map[string]bool
	RemoveErr map[string]error
	Removed   []string
	ExistsErr error
}

// NewMockFilesystem creates a MockFilesystem seeded with the given paths.
func NewMockFilesystem(paths ...string) *MockFilesystem {
	fs := &MockFilesystem{
		Files:     make(map[string]bool),
		RemoveErr: make(map[string]error),
	}
	for _, p := range paths {
		fs.Files[p] = true
	}
	return fs
}

// Exists reports whether the path is in the set.
func (m *MockFilesystem) Exists(path string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Files[path], nil
}

// Remove deletes the path from the set and records the call.
func (m *MockFilesystem) Remove(path string) error {
	if err := m.RemoveErr[path]; err != nil {
		return err
	}
	delete(m.Files, path)
	m.Removed = append(m.Removed, path)
	return nil
}

// MockAcknowledger is a test double for domain.Acknowledger.
type MockAcknowledger struct {
	Prompts []string
	Err     error
}

// Acknowledge records the prompt without blocking.
func (m *MockAcknowledger) Acknowledge(prompt string) error {
	m.Prompts = append(m.Prompts, prompt)
	return m.Err
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Cfg        *domain.Config
	LoadErr    error
	FilePath   string
	FileExists bool
}

// Load returns the configured config, or the defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg != nil {
		return m.Cfg, nil
	}
	return domain.NewDefaultConfig(), nil
}

// Path returns the configured path.
func (m *MockConfigLoader) Path() string {
	return m.FilePath
}

// Exists reports the configured existence flag.
func (m *MockConfigLoader) Exists() bool {
	return m.FileExists
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitPath  string
	InitErr   error
	InitCalls int
}

// Init records the call and returns the configured path.
func (m *MockConfigManager) Init() (string, error) {
	m.InitCalls++
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.InitPath, nil
}
