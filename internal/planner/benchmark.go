package planner

import (
	"math/rand"
	"strconv"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

const benchmarkDefaultTimeMin = 20

// Benchmark picks one workout uniformly from the benchmark library. Details
// carries the workout's id so execution can resolve the full record. An
// empty library degrades to an explanatory session.
func Benchmark(cat *catalog.Catalog, rng *rand.Rand) models.SessionPlan {
	library := cat.Benchmarks()
	if len(library) == 0 {
		return models.SessionPlan{
			Type:        models.SessionBenchmark,
			Details:     "No benchmark workouts in the library",
			TimeMin:     benchmarkDefaultTimeMin,
			FocusMuscle: "Full Body",
		}
	}

	w := library[rng.Intn(len(library))]
	timeMin := int(parseMinutes(w.EstimatedTime) + 0.5)
	if timeMin <= 0 {
		timeMin = benchmarkDefaultTimeMin
	}

	return models.SessionPlan{
		Type:        models.SessionBenchmark,
		Details:     strconv.Itoa(w.ID),
		TimeMin:     timeMin,
		FocusMuscle: "Full Body",
		Benchmark: &models.BenchmarkLevels{
			Name:          w.Name,
			WorkoutType:   w.WorkoutType,
			Beginner:      w.Beginner,
			Intermediate:  w.Intermediate,
			Advanced:      w.Advanced,
			Elite:         w.Elite,
			EstimatedTime: w.EstimatedTime,
			URL:           w.WodwellURL,
		},
	}
}
