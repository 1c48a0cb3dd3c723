package prledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/claude/ironplan/internal/models"
)

type memStore struct {
	records []models.PRRecord
}

func (m *memStore) LatestPR(_ context.Context, name string) (*models.PRRecord, error) {
	var latest *models.PRRecord
	for i := range m.records {
		rec := &m.records[i]
		if !strings.EqualFold(rec.ExerciseName, name) {
			continue
		}
		if latest == nil || rec.Date.After(latest.Date) || rec.Date.Equal(latest.Date) {
			latest = rec
		}
	}
	return latest, nil
}

func (m *memStore) InsertPR(_ context.Context, rec models.PRRecord) error {
	rec.ID = len(m.records) + 1
	m.records = append(m.records, rec)
	return nil
}

func (m *memStore) PRHistory(_ context.Context, name string) ([]models.PRRecord, error) {
	var out []models.PRRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		if strings.EqualFold(m.records[i].ExerciseName, name) {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func testLedger(store *memStore) *Ledger {
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return New(store, func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	})
}

// TestEpley checks the estimate formula and the single-rep case.
func TestEpley(t *testing.T) {
	cases := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{100, 5, 116.65},
		{110, 3, 120.99},
		{80, 1, 80},
		{80, 0, 80},
	}
	for _, tc := range cases {
		if got := Epley(tc.weight, tc.reps); got != tc.want {
			t.Errorf("Epley(%v, %d) = %v, want %v", tc.weight, tc.reps, got, tc.want)
		}
	}
}

// TestRecordCompletionInsertsFirstPR: an empty ledger accepts any valid set.
func TestRecordCompletionInsertsFirstPR(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)

	inserted, err := l.RecordCompletion(context.Background(), "Back Squat", 100, 5, "set-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Fatal("first completion not inserted")
	}
	rec := store.records[0]
	if rec.Calculated1RM == nil || *rec.Calculated1RM != 116.65 {
		t.Errorf("Calculated1RM = %v, want 116.65", rec.Calculated1RM)
	}
	if rec.Manual1RM != nil {
		t.Errorf("Manual1RM = %v, want nil", rec.Manual1RM)
	}
	if rec.SourceSetID != "set-1" {
		t.Errorf("SourceSetID = %q", rec.SourceSetID)
	}
}

// TestRecordCompletionMonotonic: only estimates strictly above the effective
// max produce records.
func TestRecordCompletionMonotonic(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)
	ctx := context.Background()

	if _, err := l.RecordCompletion(ctx, "Back Squat", 100, 5, "a"); err != nil {
		t.Fatal(err)
	}

	// Equal estimate: skipped.
	inserted, err := l.RecordCompletion(ctx, "Back Squat", 100, 5, "b")
	if err != nil {
		t.Fatal(err)
	}
	if inserted {
		t.Error("equal estimate inserted")
	}

	// 110x3 → 120.99 beats 116.65.
	inserted, err = l.RecordCompletion(ctx, "Back Squat", 110, 3, "c")
	if err != nil {
		t.Fatal(err)
	}
	if !inserted {
		t.Error("higher estimate not inserted")
	}
	if len(store.records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(store.records))
	}
	if got := *store.records[1].Calculated1RM; got != 120.99 {
		t.Errorf("second record = %v, want 120.99", got)
	}
}

// TestRecordCompletionInvalidInput is skipped silently, not an error.
func TestRecordCompletionInvalidInput(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		weight float64
		reps   int
	}{
		{"", 100, 5},
		{"Back Squat", 0, 5},
		{"Back Squat", -10, 5},
		{"Back Squat", 100, 0},
	} {
		inserted, err := l.RecordCompletion(ctx, tc.name, tc.weight, tc.reps, "x")
		if err != nil {
			t.Errorf("RecordCompletion(%q, %v, %d) error: %v", tc.name, tc.weight, tc.reps, err)
		}
		if inserted {
			t.Errorf("RecordCompletion(%q, %v, %d) inserted", tc.name, tc.weight, tc.reps)
		}
	}
	if len(store.records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(store.records))
	}
}

// TestManualOverride: a manual entry needs no monotonicity and becomes the
// effective max for suggestions.
func TestManualOverride(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)
	ctx := context.Background()

	if _, err := l.RecordCompletion(ctx, "Deadlift", 180, 3, "a"); err != nil {
		t.Fatal(err)
	}
	// Lower than the calculated max, still recorded.
	if err := l.RecordManual(ctx, "Deadlift", 170); err != nil {
		t.Fatal(err)
	}

	max, err := l.EffectiveMax(ctx, "Deadlift")
	if err != nil {
		t.Fatal(err)
	}
	if max == nil || *max != 170 {
		t.Errorf("EffectiveMax = %v, want 170", max)
	}

	w, err := l.SuggestWeight(ctx, "Deadlift", 80)
	if err != nil {
		t.Fatal(err)
	}
	if w == nil || *w != 136 {
		t.Errorf("SuggestWeight(80%%) = %v, want 136", w)
	}
}

// TestManualInvalid rejects empty names and non-positive weights.
func TestManualInvalid(t *testing.T) {
	l := testLedger(&memStore{})
	if err := l.RecordManual(context.Background(), "", 100); err == nil {
		t.Error("empty name accepted")
	}
	if err := l.RecordManual(context.Background(), "Deadlift", 0); err == nil {
		t.Error("zero weight accepted")
	}
}

// TestSuggestWeightNoHistory returns nil without error.
func TestSuggestWeightNoHistory(t *testing.T) {
	l := testLedger(&memStore{})
	w, err := l.SuggestWeight(context.Background(), "Snatch", 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != nil {
		t.Errorf("SuggestWeight = %v, want nil", w)
	}
}

// TestSuggestWeightRounding: suggestions round to two decimals.
func TestSuggestWeightRounding(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)
	ctx := context.Background()

	if _, err := l.RecordCompletion(ctx, "Bench Press", 100, 5, "a"); err != nil {
		t.Fatal(err)
	}
	// 116.65 * 0.75 = 87.4875 → 87.49
	w, err := l.SuggestWeight(ctx, "Bench Press", 75)
	if err != nil {
		t.Fatal(err)
	}
	if w == nil || *w != 87.49 {
		t.Errorf("SuggestWeight(75%%) = %v, want 87.49", w)
	}
}

// TestCaseInsensitiveLookup matches exercise names regardless of case.
func TestCaseInsensitiveLookup(t *testing.T) {
	store := &memStore{}
	l := testLedger(store)
	ctx := context.Background()

	if _, err := l.RecordCompletion(ctx, "Back Squat", 100, 5, "a"); err != nil {
		t.Fatal(err)
	}
	max, err := l.EffectiveMax(ctx, "back squat")
	if err != nil {
		t.Fatal(err)
	}
	if max == nil || *max != 116.65 {
		t.Errorf("EffectiveMax = %v, want 116.65", max)
	}
}
