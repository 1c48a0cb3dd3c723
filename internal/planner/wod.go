package planner

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// formatPools maps stimulus to candidate WOD formats. Unknown stimuli fall
// back to the Lactate Threshold pool.
var formatPools = map[string][]string{
	models.StimulusAnaerobic: {"For Time", "Sprint Intervals", "Tabata"},
	models.StimulusLactate:   {"AMRAP", "Chipper", "For Time"},
	models.StimulusVO2:       {"EMOM", "Interval Rounds", "Rounds for Time"},
}

// timeBand is the acceptable total-time window for a stimulus, minutes.
type timeBand struct {
	lo, hi float64
}

var timeBands = map[string]timeBand{
	models.StimulusAnaerobic: {8, 12},
	models.StimulusLactate:   {15, 30},
	models.StimulusVO2:       {15, 30},
}

var defaultBand = timeBand{15, 20}

const (
	wodSampleSize    = 3
	wodScaleAttempts = 5
	wodScaleMax      = 2.0
	wodMinCount      = 1
	wodMaxCount      = 20
)

var weightedNames = []string{"squat", "deadlift", "thruster"}
var bodyweightNames = []string{"rowing", "jumping"}

// WOD builds a conditioning workout for the stimulus, then iteratively
// scales volume until the estimated time lands inside the stimulus band.
func WOD(cat *catalog.Catalog, targetMuscle, stimulus string, rng *rand.Rand) models.SessionPlan {
	pool := formatPools[stimulus]
	if pool == nil {
		pool = formatPools[models.StimulusLactate]
	}
	format := pickString(rng, pool)

	wodPool := cat.ExercisesByCategory("wod")
	targetPool := catalog.Intersect(cat.ExercisesByMuscle(targetMuscle), wodPool)

	picked := sample(rng, targetPool, wodSampleSize)
	chosen := make(map[int]bool, len(picked))
	for _, ex := range picked {
		chosen[ex.ID] = true
	}
	var randomPool []models.Exercise
	for _, ex := range wodPool {
		if !chosen[ex.ID] {
			randomPool = append(randomPool, ex)
		}
	}
	picked = append(picked, sample(rng, randomPool, wodSampleSize)...)

	exercises := make([]models.WODExercise, 0, len(picked))
	for _, ex := range picked {
		exercises = append(exercises, stampExercise(ex, format, stimulus, rng))
	}
	shuffle(rng, exercises)

	band, ok := timeBands[stimulus]
	if !ok {
		band = defaultBand
	}
	total, attempts := scaleToBand(exercises, band)

	plan := models.SessionPlan{
		Type:        models.SessionWOD,
		Details:     fmt.Sprintf("%s (%s stimulus), %d movements", format, stimulus, len(exercises)),
		TimeMin:     int(math.Round(total)),
		FocusMuscle: targetMuscle,
		WOD: &models.WODDetails{
			Format:    format,
			Stimulus:  stimulus,
			Exercises: exercises,
			Attempts:  attempts,
		},
	}
	for i, ex := range exercises {
		plan.Exercises = append(plan.Exercises, models.ExerciseRow{
			Name:          ex.Name,
			Set:           i + 1,
			Reps:          ex.Reps,
			Intensity:     ex.Weight,
			RestSec:       parseRestSeconds(ex.Rest),
			Notes:         wodRowNotes(ex),
			ExerciseOrder: ex.Order,
		})
	}
	return plan
}

// stampExercise assigns weight, reps, and format attributes to one movement.
func stampExercise(ex models.Exercise, format, stimulus string, rng *rand.Rand) models.WODExercise {
	w := models.WODExercise{Name: ex.Name, Order: orderForFormat(format)}

	switch classify(ex.Name) {
	case "weighted":
		switch stimulus {
		case models.StimulusAnaerobic:
			w.Weight = "Moderate to heavy (70–90% 1RM)"
			w.Reps = strconv.Itoa(pickInt(rng, []int{6, 8, 10}))
		case models.StimulusLactate:
			w.Weight = "Moderate (60–75%)"
			w.Reps = strconv.Itoa(pickInt(rng, []int{8, 10, 12}))
		default:
			w.Weight = "Light to moderate (40–60%)"
			w.Reps = strconv.Itoa(pickInt(rng, []int{8, 10, 12}))
		}
	case "bodyweight":
		w.Weight = "Bodyweight"
		if stimulus == models.StimulusAnaerobic {
			w.Reps = "Max effort"
		} else {
			w.Reps = strconv.Itoa(pickInt(rng, []int{15, 20}))
		}
	default:
		w.Weight = "Light to moderate (40–60% 1RM)"
		w.Reps = strconv.Itoa(pickInt(rng, []int{10, 12, 15}))
	}

	switch format {
	case "Tabata":
		w.Sets, w.Work, w.Rest = 8, "20s", "10s"
	case "Sprint Intervals":
		w.Sets, w.Work, w.Rest = 6, "30s", "90s"
	case "AMRAP":
		w.Duration, w.Goal = "15 min", "Max rounds"
	case "Chipper":
		w.Rounds, w.Goal = 1, "Complete sequentially"
	case "For Time":
		w.Rounds, w.Goal = 2, "Complete as fast as possible"
	case "Rounds for Time":
		w.Rounds, w.Goal = 3, "Complete each round"
	case "Interval Rounds":
		w.Sets, w.Work, w.Rest = 4, "2 min", "1 min"
	default: // EMOM and anything new
		w.Sets, w.Rest = 3, "60s"
	}
	return w
}

func classify(name string) string {
	n := strings.ToLower(name)
	for _, marker := range weightedNames {
		if strings.Contains(n, marker) {
			return "weighted"
		}
	}
	for _, marker := range bodyweightNames {
		if strings.Contains(n, marker) {
			return "bodyweight"
		}
	}
	return "other"
}

func orderForFormat(format string) string {
	switch format {
	case "AMRAP", "Chipper", "For Time":
		return "Sequential"
	case "EMOM", "Interval Rounds":
		return "Circuit"
	case "Rounds for Time":
		return "Superset"
	default:
		return "Sequential"
	}
}

// estimateMinutes projects one movement's time cost from whichever volume
// attributes it carries.
func estimateMinutes(ex models.WODExercise) float64 {
	switch {
	case ex.Duration != "":
		return parseMinutes(ex.Duration)
	case ex.Sets > 0 && ex.Work != "":
		return (parseMinutes(ex.Work) + parseMinutes(ex.Rest)) * float64(ex.Sets)
	case ex.Rounds > 0 && ex.Reps != "":
		reps, err := strconv.Atoi(ex.Reps)
		if err != nil {
			reps = 10
		}
		perRep := 0.07
		if ex.Weight == "Bodyweight" {
			perRep = 0.05
		}
		return (float64(reps)*perRep + 0.3) * float64(ex.Rounds)
	default:
		return 2
	}
}

// scaleToBand runs the volume-scaling loop: up to five passes, each pass
// multiplying one volume attribute per exercise (sets > rounds > duration
// precedence) by the clamped band-edge ratio. Returns the final estimate and
// the number of passes consumed; non-convergence keeps the last estimate.
func scaleToBand(exercises []models.WODExercise, band timeBand) (float64, int) {
	total := 0.0
	for attempt := 1; attempt <= wodScaleAttempts; attempt++ {
		total = 0
		for _, ex := range exercises {
			total += estimateMinutes(ex)
		}
		if total >= band.lo && total <= band.hi {
			return total, attempt
		}
		if attempt == wodScaleAttempts || total == 0 {
			return total, wodScaleAttempts
		}

		edge := band.lo
		if total > band.hi {
			edge = band.hi
		}
		scale := edge / total
		if scale > wodScaleMax {
			scale = wodScaleMax
		}
		for i := range exercises {
			applyScale(&exercises[i], scale, band)
		}
	}
	return total, wodScaleAttempts
}

func applyScale(ex *models.WODExercise, scale float64, band timeBand) {
	switch {
	case ex.Sets > 0:
		ex.Sets = clampCount(math.Round(float64(ex.Sets) * scale))
	case ex.Rounds > 0:
		ex.Rounds = clampCount(math.Round(float64(ex.Rounds) * scale))
	case ex.Duration != "":
		d := parseMinutes(ex.Duration) * scale
		if d < band.lo {
			d = band.lo
		}
		if d > band.hi {
			d = band.hi
		}
		ex.Duration = fmt.Sprintf("%d min", int(math.Round(d)))
	}
}

func clampCount(v float64) int {
	n := int(v)
	if n < wodMinCount {
		n = wodMinCount
	}
	if n > wodMaxCount {
		n = wodMaxCount
	}
	return n
}

func wodRowNotes(ex models.WODExercise) string {
	var parts []string
	if ex.Sets > 0 {
		parts = append(parts, fmt.Sprintf("%d sets", ex.Sets))
	}
	if ex.Work != "" {
		parts = append(parts, ex.Work+" work")
	}
	if ex.Rounds > 0 {
		parts = append(parts, fmt.Sprintf("%d rounds", ex.Rounds))
	}
	if ex.Duration != "" {
		parts = append(parts, ex.Duration)
	}
	if ex.Goal != "" {
		parts = append(parts, ex.Goal)
	}
	return strings.Join(parts, ", ")
}
