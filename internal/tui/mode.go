// Package tui provides the full-screen interface of the uninstaller.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeConfirm Mode = iota // Confirmation screen shown before anything is removed
	ModeRunning             // Removal in progress
	ModeDone                // Results screen
	ModeLocked              // Elevation missing; removal is not possible
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeConfirm:
		return "confirm"
	case ModeRunning:
		return "running"
	case ModeDone:
		return "done"
	case ModeLocked:
		return "locked"
	default:
		return "unknown"
	}
}
