// Package usecase implements the application operations of the uninstaller.
package usecase

import (
	"context"
	"fmt"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// UninstallInput contains the parameters for an uninstall run.
type UninstallInput struct {
	BaseDir string // Optional base directory override; empty uses the resolved default
	DryRun  bool   // Report what would be removed without deleting anything
}

// UninstallOutput contains the per-target results of an uninstall run.
type UninstallOutput struct {
	BaseDir string
	Results []domain.TargetResult
}

// Removed returns the number of targets that were actually deleted.
func (o *UninstallOutput) Removed() int {
	n := 0
	for _, r := range o.Results {
		if r.Outcome == domain.OutcomeRemoved {
			n++
		}
	}
	return n
}

// Uninstall is the use case for removing the TikTok-Sayer launcher artifacts.
type Uninstall struct {
	privilege domain.Privilege
	fs        domain.Filesystem
	baseDir   string
}

// NewUninstall creates a new Uninstall use case.
// baseDir is the resolved local application data root.
func NewUninstall(privilege domain.Privilege, fs domain.Filesystem, baseDir string) *Uninstall {
	return &Uninstall{
		privilege: privilege,
		fs:        fs,
		baseDir:   baseDir,
	}
}

// Execute removes the launcher artifacts under the base directory.
//
// The privilege gate runs before any filesystem access; a non-elevated
// process gets domain.ErrElevationRequired and nothing is touched. Each
// target is then handled independently: an absent file is an idempotent
// success, and a failed deletion is recorded on the result and does not
// stop the run.
func (uc *Uninstall) Execute(_ context.Context, in UninstallInput) (*UninstallOutput, error) {
	elevated, err := uc.privilege.Elevated()
	if err != nil {
		return nil, fmt.Errorf("check privileges: %w", err)
	}
	if !elevated {
		return nil, domain.ErrElevationRequired
	}

	baseDir := uc.baseDir
	if in.BaseDir != "" {
		baseDir = in.BaseDir
	}
	if baseDir == "" {
		return nil, domain.ErrNoBaseDir
	}

	out := &UninstallOutput{BaseDir: baseDir}
	for _, target := range domain.Targets(baseDir) {
		out.Results = append(out.Results, uc.processTarget(target, in.DryRun))
	}
	return out, nil
}

// processTarget checks and removes a single target.
func (uc *Uninstall) processTarget(target domain.Target, dryRun bool) domain.TargetResult {
	exists, err := uc.fs.Exists(target.Path)
	if err != nil {
		return domain.TargetResult{Target: target, Outcome: domain.OutcomeFailed, Reason: err.Error()}
	}
	if !exists {
		return domain.TargetResult{Target: target, Outcome: domain.OutcomeNotFound}
	}
	if dryRun {
		return domain.TargetResult{Target: target, Outcome: domain.OutcomeWouldRemove}
	}
	if err := uc.fs.Remove(target.Path); err != nil {
		return domain.TargetResult{Target: target, Outcome: domain.OutcomeFailed, Reason: err.Error()}
	}
	return domain.TargetResult{Target: target, Outcome: domain.OutcomeRemoved}
}
