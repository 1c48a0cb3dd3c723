package mcp

import (
	"context"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/storage"
)

// DataSource abstracts the read side of the data layer for MCP tools and
// resources.
type DataSource interface {
	LoadCatalog(ctx context.Context) (models.CatalogData, error)
	QueryPlan(ctx context.Context) ([]storage.PlanWeekSummary, error)
	QueryDaySessions(ctx context.Context, dayID int) ([]storage.SessionDetail, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
