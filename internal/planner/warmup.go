package planner

import (
	"fmt"
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

const (
	warmupGeneralCount  = 8
	warmupSpecificCount = 8
	warmupDurationSec   = 30
	warmupTransitionSec = 5
	warmupTimeMin       = 10
)

// Warmup assembles a general-plus-targeted movement circuit for the day's
// muscles. Fixed ten-minute budget.
func Warmup(cat *catalog.Catalog, muscles []string, rng *rand.Rand) models.SessionPlan {
	general := sample(rng, cat.AllExercises(), warmupGeneralCount)

	var targeted []models.Exercise
	seen := make(map[int]bool, len(general))
	for _, ex := range general {
		seen[ex.ID] = true
	}
	var pool []models.Exercise
	for _, m := range muscles {
		for _, ex := range cat.ExercisesByMuscle(m) {
			if !seen[ex.ID] {
				seen[ex.ID] = true
				pool = append(pool, ex)
			}
		}
	}
	targeted = sample(rng, pool, warmupSpecificCount)

	plan := models.SessionPlan{
		Type:        models.SessionWarmup,
		Details:     fmt.Sprintf("Dynamic warmup: %d general + %d targeted movements", len(general), len(targeted)),
		TimeMin:     warmupTimeMin,
		FocusMuscle: "Full Body",
	}
	order := 0
	for _, ex := range append(general, targeted...) {
		order++
		plan.Activities = append(plan.Activities, models.Activity{
			Name:          ex.Name,
			DurationSec:   warmupDurationSec,
			TransitionSec: warmupTransitionSec,
		})
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          ex.Name,
			Set:           order,
			Reps:          fmt.Sprintf("%ds", warmupDurationSec),
			RestSec:       warmupTransitionSec,
			ExerciseOrder: "Circuit",
			Equipment:     ex.Equipment,
		})
	}
	return plan
}
