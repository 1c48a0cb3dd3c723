package planner

import (
	"fmt"
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

const (
	lightSupersets = 3
	lightRestSec   = 30
	lightTimeMin   = 15

	// lightRepsText is part of the session contract with the execution UI.
	lightRepsText = "15–20 reps each @ <60% 1RM"
	lightTempo    = "2010"
)

// Light builds three muscular-endurance supersets pairing the target muscle
// with its opposing group, six exercise rows total.
func Light(cat *catalog.Catalog, muscle string, rng *rand.Rand) models.SessionPlan {
	opposing := catalog.OpposingGroup(muscle)

	primary := lightPool(cat, muscle)
	secondary := lightPool(cat, opposing)

	plan := models.SessionPlan{
		Type:        models.SessionLight,
		Details:     fmt.Sprintf("Muscular endurance supersets: %s with opposing %s", muscle, opposing),
		TimeMin:     lightTimeMin,
		FocusMuscle: muscle,
	}
	if len(primary) == 0 || len(secondary) == 0 {
		plan.Details = fmt.Sprintf("No endurance pool for %s / %s", muscle, opposing)
		return plan
	}

	primaryPicks := cycleSample(rng, primary, lightSupersets)
	opposingPicks := cycleSample(rng, secondary, lightSupersets)

	row := 0
	for i := 0; i < lightSupersets; i++ {
		p, o := primaryPicks[i], opposingPicks[i]
		plan.Supersets = append(plan.Supersets, models.Superset{Primary: p.Name, Opposing: o.Name})

		row++
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          p.Name,
			Set:           row,
			Reps:          lightRepsText,
			RestSec:       lightRestSec,
			Notes:         fmt.Sprintf("Superset %d - Primary (%s)", i+1, muscle),
			ExerciseOrder: "Superset",
			Tempo:         lightTempo,
			Equipment:     p.Equipment,
		})
		row++
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          o.Name,
			Set:           row,
			Reps:          lightRepsText,
			RestSec:       lightRestSec,
			Notes:         fmt.Sprintf("Superset %d - Opposing (%s)", i+1, opposing),
			ExerciseOrder: "Superset",
			Tempo:         lightTempo,
			Equipment:     o.Equipment,
		})
	}
	return plan
}

// lightPool is the muscle's Muscular Endurance exercises, widening to the
// whole muscle pool and then the full catalog when empty.
func lightPool(cat *catalog.Catalog, muscle string) []models.Exercise {
	pool := catalog.Intersect(cat.ExercisesByMuscle(muscle), cat.ExercisesByCategory("Muscular Endurance"))
	if len(pool) == 0 {
		pool = cat.ExercisesByMuscle(muscle)
	}
	if len(pool) == 0 {
		pool = cat.AllExercises()
	}
	return pool
}

// cycleSample draws n exercises, without replacement while the pool lasts and
// cycling a reshuffle when n exceeds the pool.
func cycleSample(rng *rand.Rand, pool []models.Exercise, n int) []models.Exercise {
	out := make([]models.Exercise, 0, n)
	for len(out) < n {
		batch := sample(rng, pool, n-len(out))
		out = append(out, batch...)
	}
	return out
}
