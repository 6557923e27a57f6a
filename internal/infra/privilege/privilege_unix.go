//go:build !windows

// Package privilege probes the operating system for process elevation.
package privilege

import (
	"os"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/domain"
)

// Ensure Checker implements domain.Privilege.
var _ domain.Privilege = (*Checker)(nil)

// Checker reports elevation from the effective user ID.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Elevated reports whether the process runs as root.
func (c *Checker) Elevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
