package planner

import (
	"fmt"
	"math"

	"github.com/claude/ironplan/internal/models"
)

const (
	// zone2PaceFactor converts 5k race pace to Zone 2 pace.
	zone2PaceFactor = 0.70

	defaultRunMinutes = 60
	default5kMinutes  = 24.0
)

// Run prescribes a Zone 2 steady run from the athlete's current 5k time.
// Zero inputs take the defaults (60 minutes, 24-minute 5k).
func Run(durationMin int, fiveKMin float64) models.SessionPlan {
	if durationMin <= 0 {
		durationMin = defaultRunMinutes
	}
	if fiveKMin <= 0 {
		fiveKMin = default5kMinutes
	}

	pacePerKm := fiveKMin / 5
	zone2Pace := pacePerKm / zone2PaceFactor
	zone2KPH := 60 / zone2Pace

	return models.SessionPlan{
		Type: models.SessionRun,
		Details: fmt.Sprintf("%d-minute Zone 2 run at %s min/km (%.2f km/h), from a %s-minute 5k",
			durationMin, trimFloat(zone2Pace), zone2KPH, trimFloat(fiveKMin)),
		TimeMin:     durationMin,
		FocusMuscle: "Cardio",
	}
}

// trimFloat renders a float with at most two decimals and no trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", math.Round(v*100)/100)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
