package planner

import (
	"fmt"
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

const (
	cooldownTargetedMax   = 5
	cooldownTotalMax      = 10
	cooldownDurationSec   = 55
	cooldownTransitionSec = 5
	cooldownTimeMin       = 10
)

// Cooldown selects up to five stretches targeting the day's muscles and
// fills to ten with general cooldown work.
func Cooldown(cat *catalog.Catalog, muscles []string, rng *rand.Rand) models.SessionPlan {
	general := cat.ExercisesByCategory("Cooldown")

	var targetedPool []models.Exercise
	seen := make(map[int]bool)
	for _, m := range muscles {
		for _, ex := range catalog.Intersect(cat.ExercisesByMuscle(m), general) {
			if !seen[ex.ID] {
				seen[ex.ID] = true
				targetedPool = append(targetedPool, ex)
			}
		}
	}
	targeted := sample(rng, targetedPool, cooldownTargetedMax)

	chosen := make(map[int]bool, len(targeted))
	for _, ex := range targeted {
		chosen[ex.ID] = true
	}
	var fillPool []models.Exercise
	for _, ex := range general {
		if !chosen[ex.ID] {
			fillPool = append(fillPool, ex)
		}
	}
	fill := sample(rng, fillPool, cooldownTotalMax-len(targeted))

	plan := models.SessionPlan{
		Type:        models.SessionCooldown,
		Details:     fmt.Sprintf("Cooldown: %d targeted + %d general stretches", len(targeted), len(fill)),
		TimeMin:     cooldownTimeMin,
		FocusMuscle: "Full Body",
	}
	order := 0
	add := func(ex models.Exercise, focus string) {
		order++
		plan.Activities = append(plan.Activities, models.Activity{
			Name:          ex.Name,
			DurationSec:   cooldownDurationSec,
			TransitionSec: cooldownTransitionSec,
			Focus:         focus,
		})
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          ex.Name,
			Set:           order,
			Reps:          fmt.Sprintf("%ds", cooldownDurationSec),
			RestSec:       cooldownTransitionSec,
			Notes:         focus,
			ExerciseOrder: "Circuit",
			Equipment:     ex.Equipment,
		})
	}
	for _, ex := range targeted {
		add(ex, "Targeted")
	}
	for _, ex := range fill {
		add(ex, "General")
	}
	return plan
}
