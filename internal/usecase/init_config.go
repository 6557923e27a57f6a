package usecase

import (
	"context"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct{}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig creates a default configuration file.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute writes the default config file.
// Returns domain.ErrConfigExists when one is already present.
func (uc *InitConfig) Execute(_ context.Context, _ InitConfigInput) (*InitConfigOutput, error) {
	path, err := uc.configManager.Init()
	if err != nil {
		return nil, err
	}

	return &InitConfigOutput{Path: path}, nil
}
