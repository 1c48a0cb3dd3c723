package planner

import (
	"testing"
)

// TestRunPaceDerivation checks the Zone 2 pace math for a 24-minute 5k:
// race pace 4.8 min/km, Zone 2 at 70% effort is 6.86 min/km (8.75 km/h).
func TestRunPaceDerivation(t *testing.T) {
	plan := Run(45, 24)

	want := "45-minute Zone 2 run at 6.86 min/km (8.75 km/h), from a 24-minute 5k"
	if plan.Details != want {
		t.Errorf("Details = %q, want %q", plan.Details, want)
	}
	if plan.TimeMin != 45 {
		t.Errorf("TimeMin = %d, want 45", plan.TimeMin)
	}
	if plan.FocusMuscle != "Cardio" {
		t.Errorf("FocusMuscle = %q, want Cardio", plan.FocusMuscle)
	}
}

// TestRunDefaults checks zero inputs fall back to a 60-minute run off a
// 24-minute 5k.
func TestRunDefaults(t *testing.T) {
	plan := Run(0, 0)
	want := "60-minute Zone 2 run at 6.86 min/km (8.75 km/h), from a 24-minute 5k"
	if plan.Details != want {
		t.Errorf("Details = %q, want %q", plan.Details, want)
	}
	if plan.TimeMin != 60 {
		t.Errorf("TimeMin = %d, want 60", plan.TimeMin)
	}
}

// TestTrimFloat checks decimal rendering in pace strings.
func TestTrimFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{4.8, "4.8"},
		{6.857142857, "6.86"},
		{24, "24"},
		{22.5, "22.5"},
	}
	for _, tc := range cases {
		if got := trimFloat(tc.in); got != tc.want {
			t.Errorf("trimFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
