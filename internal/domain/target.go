// Package domain defines the core model and ports for the TikTok-Sayer
// uninstaller: the fixed launcher artifacts, removal outcomes, and the
// platform capabilities the use cases depend on.
package domain

import "fmt"

// Target is one launcher artifact the uninstaller manages.
type Target struct {
	Name string // File base name, used in status lines
	Path string // Path resolved against the base directory
}

// Targets returns the fixed launcher artifacts under the base directory,
// in processing order (script first, then executable).
func Targets(baseDir string) []Target {
	return []Target{
		{Name: LauncherScriptName, Path: LauncherScriptPath(baseDir)},
		{Name: LauncherExeName, Path: LauncherExePath(baseDir)},
	}
}

// TargetResult records the outcome of processing a single target.
// Fields are ordered to minimize memory padding.
type TargetResult struct {
	Target  Target
	Outcome Outcome
	Reason  string // Populated when Outcome is OutcomeFailed
}

// Line renders the console status line for this result.
func (r TargetResult) Line() string {
	if r.Outcome == OutcomeFailed && r.Reason != "" {
		return fmt.Sprintf("Warning: %s %s: %s", r.Target.Name, r.Outcome.Display(), r.Reason)
	}
	return fmt.Sprintf("%s %s.", r.Target.Name, r.Outcome.Display())
}
