// Package usecase implements the application operations of the uninstaller.
package usecase

import (
	"context"
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	File      domain.ConfigInfo // Config file info
	Effective *domain.Config    // Effective configuration after defaults
}

// ShowConfig displays the effective configuration.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		loader: loader,
	}
}

// Execute loads the configuration and reports where it came from.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &ShowConfigOutput{
		File: domain.ConfigInfo{
			Path:   uc.loader.Path(),
			Exists: uc.loader.Exists(),
		},
		Effective: cfg,
	}, nil
}
