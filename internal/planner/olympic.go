package planner

import (
	"fmt"
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// olympicSchedule is the working-set intensity progression by week; week 6 is
// the deload.
var olympicSchedule = map[int][2]float64{
	1: {70, 75},
	2: {75, 80},
	3: {80, 85},
	4: {85, 90},
	5: {90, 95},
	6: {65, 70},
}

const (
	olympicWorkReps    = 3
	olympicWorkRestSec = 120
	olympicWarmRestSec = 60
	olympicTimeMin     = 20
)

// Olympic builds a technique session on one lift from the Olympic category:
// two warmup sets offset below the first working intensity, then the week's
// working sets.
func Olympic(cat *catalog.Catalog, week int, rng *rand.Rand) models.SessionPlan {
	pool := cat.ExercisesByCategory("Olympic")
	if len(pool) == 0 {
		pool = cat.AllExercises()
	}
	if len(pool) == 0 {
		return models.SessionPlan{
			Type:        models.SessionOlympic,
			Details:     "No exercises available for an olympic session",
			TimeMin:     olympicTimeMin,
			FocusMuscle: "Olympic Lifts",
		}
	}
	lift := pickOne(rng, pool)

	sched, ok := olympicSchedule[week]
	if !ok {
		sched = olympicSchedule[1]
	}

	type prescription struct {
		intensity float64
		reps      int
		rest      int
		warmup    bool
	}
	sets := []prescription{
		{sched[0] - 20, 5, olympicWarmRestSec, true},
		{sched[0] - 10, 3, olympicWarmRestSec, true},
	}
	for _, intensity := range sched {
		sets = append(sets, prescription{intensity, olympicWorkReps, olympicWorkRestSec, false})
	}

	plan := models.SessionPlan{
		Type:        models.SessionOlympic,
		Details:     fmt.Sprintf("%s: technique work at %v%%/%v%% 1RM", lift.Name, sched[0], sched[1]),
		TimeMin:     olympicTimeMin,
		FocusMuscle: "Olympic Lifts",
	}
	working := 0
	for i, p := range sets {
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
	return plan
}
