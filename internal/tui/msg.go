package tui

import "github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgGateChecked is sent when the privilege check completes.
type MsgGateChecked struct {
	Err      error
	Elevated bool
}

func (MsgGateChecked) sealed() {}

// MsgPlanLoaded is sent when the target paths have been resolved.
type MsgPlanLoaded struct {
	BaseDir string
	Source  string
	Targets []domain.Target
}

func (MsgPlanLoaded) sealed() {}

// MsgUninstallDone is sent when a removal run has finished.
type MsgUninstallDone struct {
	Results []domain.TargetResult
	DryRun  bool
}

func (MsgUninstallDone) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
