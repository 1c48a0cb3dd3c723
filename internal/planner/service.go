package planner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// CatalogSource loads the reference-table snapshot for one run.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (models.CatalogData, error)
}

// PlanSink persists a projected plan with full-replace semantics.
type PlanSink interface {
	SavePlan(ctx context.Context, snap *models.PlanSnapshot) error
}

// GenerateRequest parameterizes one composition run. A nil Seed derives one
// from the clock; a fixed Seed reproduces the plan exactly.
type GenerateRequest struct {
	StartDate      time.Time
	Skill          string
	Seed           *int64
	RunDurationMin int
	FiveKTimeMin   float64
}

// Service wires the composition engine to its external collaborators: it
// loads the catalog once, composes, projects, and stores.
type Service struct {
	Source CatalogSource
	Sink   PlanSink

	// Defaults applied when the request leaves them zero or empty.
	RunDurationMin int
	FiveKTimeMin   float64
	DefaultSkill   string
}

// Generate runs one composition and persists the result. Composition itself
// never touches the sink; a sink failure is reported after the plan is
// already built.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*models.Plan, error) {
	data, err := s.Source.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	cat := catalog.New(data)

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	runMin := req.RunDurationMin
	if runMin == 0 {
		runMin = s.RunDurationMin
	}
	fiveK := req.FiveKTimeMin
	if fiveK == 0 {
		fiveK = s.FiveKTimeMin
	}
	skill := req.Skill
	if skill == "" {
		skill = s.DefaultSkill
	}

	composer := &Composer{Catalog: cat, RunDurationMin: runMin, FiveKTimeMin: fiveK}
	plan := composer.Compose(req.StartDate, skill, rand.New(rand.NewSource(seed)))

	if err := s.Sink.SavePlan(ctx, Project(plan, cat)); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return plan, nil
}
