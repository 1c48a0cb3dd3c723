package planner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// heavySchedule is the working-set intensity progression (percent of 1RM) by
// week. Week 6 is the deload.
var heavySchedule = map[int][3]float64{
	1: {60, 65, 70},
	2: {65, 70, 75},
	3: {70, 75, 80},
	4: {75, 80, 85},
	5: {80, 85, 90},
	6: {60, 65, 70},
}

const (
	heavyWorkReps    = 5
	heavyWorkRestSec = 180
	heavyWarmRestSec = 60
	heavyMinTimeMin  = 20
)

// Heavy builds a single-lift strength session: three ramping warmup sets off
// the first working intensity, then three working sets on the week's
// schedule. Pool is the muscle's Heavy-category exercises; an empty pool
// falls back to the whole catalog.
func Heavy(cat *catalog.Catalog, muscle string, week int, rng *rand.Rand) models.SessionPlan {
	pool := catalog.Intersect(cat.ExercisesByMuscle(muscle), cat.ExercisesByCategory("Heavy"))
	if len(pool) == 0 {
		pool = cat.AllExercises()
	}
	if len(pool) == 0 {
		return models.SessionPlan{
			Type:        models.SessionHeavy,
			Details:     "No exercises available for a heavy session",
			TimeMin:     heavyMinTimeMin,
			FocusMuscle: muscle,
		}
	}
	lift := pickOne(rng, pool)

	sched, ok := heavySchedule[week]
	if !ok {
		sched = heavySchedule[1]
	}

	type prescription struct {
		intensity float64
		reps      int
		rest      int
		warmup    bool
	}
	sets := []prescription{
		{round2(0.5 * sched[0]), 8, heavyWarmRestSec, true},
		{round2(0.7 * sched[0]), 6, heavyWarmRestSec, true},
		{round2(0.85 * sched[0]), 3, heavyWarmRestSec, true},
		{sched[0], heavyWorkReps, heavyWorkRestSec, false},
		{sched[1], heavyWorkReps, heavyWorkRestSec, false},
		{sched[2], heavyWorkReps, heavyWorkRestSec, false},
	}

	plan := models.SessionPlan{
		Type:        models.SessionHeavy,
		Details:     fmt.Sprintf("%s: 3 warmup sets, then working sets at %v%%/%v%%/%v%% 1RM", lift.Name, sched[0], sched[1], sched[2]),
		FocusMuscle: muscle,
	}

	totalSec := 0
	working := 0
	for i, p := range sets {
		totalSec += p.reps*5 + p.rest
		plan.Sets = append(plan.Sets, models.SetScheme{
			Exercise:  lift.Name,
			Intensity: p.intensity,
			Reps:      p.reps,
			RestSec:   p.rest,
			Warmup:    p.warmup,
		})
		notes := ""
		if p.warmup {
			notes = fmt.Sprintf("Warmup set %d", i+1)
		} else {
			working++
			notes = fmt.Sprintf("Working set %d", working)
		}
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          lift.Name,
			Set:           i + 1,
			Reps:          fmt.Sprintf("%d", p.reps),
			Intensity:     formatPercent(p.intensity),
			RestSec:       p.rest,
			Notes:         notes,
			ExerciseOrder: "Sequential",
			Equipment:     lift.Equipment,
		})
	}

	minutes := int(math.Round(float64(totalSec) / 60))
	if minutes < heavyMinTimeMin {
		minutes = heavyMinTimeMin
	}
	plan.TimeMin = minutes
	return plan
}
