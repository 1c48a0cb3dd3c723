package mcp

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/prledger"
	"github.com/claude/ironplan/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

type fakeSource struct {
	catalog models.CatalogData
}

func (f *fakeSource) LoadCatalog(_ context.Context) (models.CatalogData, error) {
	return f.catalog, nil
}

func (f *fakeSource) QueryPlan(_ context.Context) ([]storage.PlanWeekSummary, error) {
	return nil, nil
}

func (f *fakeSource) QueryDaySessions(_ context.Context, _ int) ([]storage.SessionDetail, error) {
	return nil, nil
}

type fakePRStore struct {
	records []models.PRRecord
}

func (f *fakePRStore) LatestPR(_ context.Context, name string) (*models.PRRecord, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if strings.EqualFold(f.records[i].ExerciseName, name) {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakePRStore) InsertPR(_ context.Context, rec models.PRRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakePRStore) PRHistory(_ context.Context, name string) ([]models.PRRecord, error) {
	var out []models.PRRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if strings.EqualFold(f.records[i].ExerciseName, name) {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func testHandlers(store *fakePRStore) *handlers {
	return &handlers{
		ds:     &fakeSource{},
		ledger: prledger.New(store, nil),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestRecordSetInsertsPR verifies a completed set lands in the ledger and the
// tool reports it.
func TestRecordSetInsertsPR(t *testing.T) {
	store := &fakePRStore{}
	h := testHandlers(store)

	res, err := h.recordSet(context.Background(), callReq(map[string]any{
		"exercise": "Back Squat",
		"weight":   100.0,
		"reps":     5.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("recordSet returned tool error: %+v", res.Content)
	}
	if len(store.records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(store.records))
	}
	got := store.records[0]
	if got.Calculated1RM == nil || *got.Calculated1RM != 116.65 {
		t.Errorf("Calculated1RM = %v, want 116.65", got.Calculated1RM)
	}
	if got.SourceSetID == "" {
		t.Error("SourceSetID not generated")
	}
}

// TestRecordSetMissingParams verifies required-parameter validation.
func TestRecordSetMissingParams(t *testing.T) {
	store := &fakePRStore{}
	h := testHandlers(store)

	res, err := h.recordSet(context.Background(), callReq(map[string]any{
		"exercise": "Back Squat",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for missing weight/reps")
	}
	if len(store.records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(store.records))
	}
}

// TestSuggestWeightNoHistory verifies the tool succeeds with a nil weight when
// the exercise has no ledger entries.
func TestSuggestWeightNoHistory(t *testing.T) {
	h := testHandlers(&fakePRStore{})

	res, err := h.suggestWeight(context.Background(), callReq(map[string]any{
		"exercise": "Deadlift",
		"percent":  75.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("suggestWeight returned tool error: %+v", res.Content)
	}
}

// TestListBenchmarksUsesCatalog verifies the tool reads the benchmark library
// from the data source.
func TestListBenchmarksUsesCatalog(t *testing.T) {
	h := testHandlers(&fakePRStore{})
	h.ds = &fakeSource{catalog: models.CatalogData{
		Benchmarks: []models.BenchmarkWorkout{{ID: 7, Name: "Fran"}},
	}}

	res, err := h.listBenchmarks(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("listBenchmarks returned tool error: %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want TextContent", res.Content[0])
	}
	if !strings.Contains(text.Text, "Fran") {
		t.Errorf("benchmark list %q missing Fran", text.Text)
	}
}
