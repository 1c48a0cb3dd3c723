// Package prledger maintains the append-only one-rep-max history fed by
// completed sets, and answers weight-suggestion queries against it.
package prledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/claude/ironplan/internal/models"
)

// epleyFactor is the per-rep coefficient of the Epley 1RM estimate.
const epleyFactor = 0.0333

// Store is the persistence surface the ledger needs. Latest returns nil when
// the exercise has no records.
type Store interface {
	LatestPR(ctx context.Context, exerciseName string) (*models.PRRecord, error)
	InsertPR(ctx context.Context, rec models.PRRecord) error
	PRHistory(ctx context.Context, exerciseName string) ([]models.PRRecord, error)
}

// Ledger wraps a Store with the estimate/insert policy.
type Ledger struct {
	store Store
	now   func() time.Time
}

// New creates a Ledger. A nil clock uses time.Now.
func New(store Store, clock func() time.Time) *Ledger {
	if clock == nil {
		clock = time.Now
	}
	return &Ledger{store: store, now: clock}
}

// Epley estimates a 1RM from a completed set, rounded to two decimals. A
// single rep is taken at face value.
func Epley(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return math.Round(weight*(1+epleyFactor*float64(reps))*100) / 100
}

// RecordCompletion feeds one completed set into the ledger. A record is
// inserted only when the estimate strictly beats the current effective max;
// invalid input (non-positive weight or reps) is skipped silently. Returns
// whether a record was inserted.
func (l *Ledger) RecordCompletion(ctx context.Context, exerciseName string, weight float64, reps int, sourceSetID string) (bool, error) {
	if exerciseName == "" || weight <= 0 || reps <= 0 {
		return false, nil
	}

	estimate := Epley(weight, reps)
	current, err := l.EffectiveMax(ctx, exerciseName)
	if err != nil {
		return false, err
	}
	if current != nil && *current >= estimate {
		return false, nil
	}

	rec := models.PRRecord{
		ExerciseName:  exerciseName,
		Calculated1RM: &estimate,
		SourceSetID:   sourceSetID,
		Date:          l.now(),
	}
	if err := l.store.InsertPR(ctx, rec); err != nil {
		return false, fmt.Errorf("inserting PR record: %w", err)
	}
	return true, nil
}

// RecordManual appends a manual 1RM entry. Manual entries override history,
// so no monotonicity check applies.
func (l *Ledger) RecordManual(ctx context.Context, exerciseName string, weight float64) error {
	if exerciseName == "" || weight <= 0 {
		return fmt.Errorf("manual 1RM requires an exercise name and positive weight")
	}
	rec := models.PRRecord{
		ExerciseName: exerciseName,
		Manual1RM:    &weight,
		Date:         l.now(),
	}
	if err := l.store.InsertPR(ctx, rec); err != nil {
		return fmt.Errorf("inserting manual PR record: %w", err)
	}
	return nil
}

// EffectiveMax returns the most recent record's max for the exercise,
// preferring a manual value within that record; nil when no history exists.
func (l *Ledger) EffectiveMax(ctx context.Context, exerciseName string) (*float64, error) {
	latest, err := l.store.LatestPR(ctx, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("querying latest PR: %w", err)
	}
	return latest.EffectiveMax(), nil
}

// SuggestWeight converts a percent-of-1RM prescription into kilograms using
// the effective max; nil when the exercise has no history.
func (l *Ledger) SuggestWeight(ctx context.Context, exerciseName string, percent float64) (*float64, error) {
	max, err := l.EffectiveMax(ctx, exerciseName)
	if err != nil || max == nil {
		return nil, err
	}
	w := math.Round(*max*percent) / 100
	return &w, nil
}

// History returns the exercise's full PR record list, newest first.
func (l *Ledger) History(ctx context.Context, exerciseName string) ([]models.PRRecord, error) {
	return l.store.PRHistory(ctx, exerciseName)
}
