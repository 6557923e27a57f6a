package domain

import "testing"

func TestOutcome_Display(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"removed", OutcomeRemoved, "removed successfully"},
		{"not found", OutcomeNotFound, "not found"},
		{"would remove", OutcomeWouldRemove, "would be removed"},
		{"failed", OutcomeFailed, "could not be removed"},
		{"unknown falls through", Outcome("weird"), "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutcome_IsValid(t *testing.T) {
	for _, o := range AllOutcomes() {
		if !o.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", o)
		}
	}
	if Outcome("bogus").IsValid() {
		t.Error("IsValid(bogus) = true, want false")
	}
}

func TestOutcome_Mutated(t *testing.T) {
	if !OutcomeRemoved.Mutated() {
		t.Error("Mutated(removed) = false, want true")
	}
	for _, o := range []Outcome{OutcomeNotFound, OutcomeWouldRemove, OutcomeFailed} {
		if o.Mutated() {
			t.Errorf("Mutated(%s) = true, want false", o)
		}
	}
}

func TestTargetResult_Line(t *testing.T) {
	target := Target{Name: "tiktok-sayer-gui.exe", Path: "/tmp/tiktok-sayer-gui.exe"}

	tests := []struct {
		name   string
		result TargetResult
		want   string
	}{
		{
			name:   "removed",
			result: TargetResult{Target: target, Outcome: OutcomeRemoved},
			want:   "tiktok-sayer-gui.exe removed successfully.",
		},
		{
			name:   "not found",
			result: TargetResult{Target: target, Outcome: OutcomeNotFound},
			want:   "tiktok-sayer-gui.exe not found.",
		},
		{
			name:   "failed with reason",
			result: TargetResult{Target: target, Outcome: OutcomeFailed, Reason: "file in use"},
			want:   "Warning: tiktok-sayer-gui.exe could not be removed: file in use",
		},
		{
			name:   "failed without reason",
			result: TargetResult{Target: target, Outcome: OutcomeFailed},
			want:   "tiktok-sayer-gui.exe could not be removed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}
