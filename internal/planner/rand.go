package planner

import (
	"math/rand"

	"github.com/claude/ironplan/internal/models"
)

// sample returns up to n elements drawn without replacement. The pool is not
// modified; order of the result follows the draw.
func sample(rng *rand.Rand, pool []models.Exercise, n int) []models.Exercise {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	out := make([]models.Exercise, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}

// pickOne draws a single exercise uniformly. The pool must be non-empty.
func pickOne(rng *rand.Rand, pool []models.Exercise) models.Exercise {
	return pool[rng.Intn(len(pool))]
}

// pickString draws one string uniformly.
func pickString(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// pickInt draws one int uniformly.
func pickInt(rng *rand.Rand, options []int) int {
	return options[rng.Intn(len(options))]
}

// shuffle permutes the slice in place.
func shuffle(rng *rand.Rand, pool []models.WODExercise) {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}
