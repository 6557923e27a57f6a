package usecase

import (
	"context"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// ResolveTargetsInput contains the parameters for resolving target paths.
type ResolveTargetsInput struct {
	BaseDir string // Optional base directory override; empty uses the resolved default
}

// ResolveTargetsOutput contains the resolved base directory and targets.
type ResolveTargetsOutput struct {
	BaseDir string
	Source  string // Where the base directory came from: flag, config, environment or default
	Targets []domain.Target
}

// ResolveTargets is the use case for computing the uninstall target paths.
// It performs no filesystem access.
type ResolveTargets struct {
	baseDir string
	source  string
}

// NewResolveTargets creates a new ResolveTargets use case.
func NewResolveTargets(baseDir, source string) *ResolveTargets {
	return &ResolveTargets{
		baseDir: baseDir,
		source:  source,
	}
}

// Execute resolves the base directory and returns both target paths.
func (uc *ResolveTargets) Execute(_ context.Context, in ResolveTargetsInput) (*ResolveTargetsOutput, error) {
	baseDir, source := uc.baseDir, uc.source
	if in.BaseDir != "" {
		baseDir, source = in.BaseDir, "flag"
	}
	if baseDir == "" {
		return nil, domain.ErrNoBaseDir
	}

	return &ResolveTargetsOutput{
		BaseDir: baseDir,
		Source:  source,
		Targets: domain.Targets(baseDir),
	}, nil
}
