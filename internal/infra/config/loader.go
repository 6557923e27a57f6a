// Package config provides configuration loading for the uninstaller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the TOML config file.
type Loader struct {
	confDir string // Directory holding config.toml
}

// NewLoader creates a Loader rooted at the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Path returns the config file location.
func (l *Loader) Path() string {
	return filepath.Join(l.confDir, domain.ConfigFileName)
}

// Exists reports whether the config file is present.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.Path())
	return err == nil
}

// Load returns the effective configuration. A missing file yields the
// defaults; unknown keys are collected as warnings, not errors.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.confDir == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	applyRaw(cfg, raw)
	return cfg, nil
}

// applyRaw copies known keys from the raw map and collects warnings
// for the rest.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	var warnings []string
	for key, value := range raw {
		switch key {
		case "base_dir":
			if s, ok := value.(string); ok {
				cfg.BaseDir = s
			}
		case "assume_yes":
			if b, ok := value.(bool); ok {
				cfg.AssumeYes = b
			}
		case "log_level":
			if s, ok := value.(string); ok {
				cfg.LogLevel = s
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", key))
		}
	}
	sort.Strings(warnings)
	cfg.Warnings = warnings
}
