//go:build windows

// Package privilege probes the operating system for process elevation.
package privilege

import (
	"golang.org/x/sys/windows"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure Checker implements domain.Privilege.
var _ domain.Privilege = (*Checker)(nil)

// Checker reports elevation from the process access token.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Elevated reports whether the process token carries the elevation flag.
// Administrators group membership alone is not enough under UAC; the token
// state is what gates writes to the protected install location.
func (c *Checker) Elevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
