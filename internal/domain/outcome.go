package domain

// Outcome represents the result of processing one uninstall target.
type Outcome string

const (
	OutcomeRemoved     Outcome = "removed"      // File existed and was deleted
	OutcomeNotFound    Outcome = "not_found"    // File was already absent (idempotent success)
	OutcomeWouldRemove Outcome = "would_remove" // Dry run: file exists and would be deleted
	OutcomeFailed      Outcome = "failed"       // Deletion failed after the existence check
)

// AllOutcomes returns all valid outcome values.
func AllOutcomes() []Outcome {
	return []Outcome{
		OutcomeRemoved,
		OutcomeNotFound,
		OutcomeWouldRemove,
		OutcomeFailed,
	}
}

// Mutated reports whether this outcome changed the filesystem.
func (o Outcome) Mutated() bool {
	return o == OutcomeRemoved
}

// Display returns a human-readable representation of the outcome.
func (o Outcome) Display() string {
	switch o {
	case OutcomeRemoved:
		return "removed successfully"
	case OutcomeNotFound:
		return "not found"
	case OutcomeWouldRemove:
		return "would be removed"
	case OutcomeFailed:
		return "could not be removed"
	default:
		return string(o)
	}
}

// IsValid returns true if the outcome is a known valid value.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeRemoved, OutcomeNotFound, OutcomeWouldRemove, OutcomeFailed:
		return true
	default:
		return false
	}
}
