package mcp

import (
	"log/slog"

	"github.com/claude/ironplan/internal/planner"
	"github.com/claude/ironplan/internal/prledger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, plans *planner.Service, ledger *prledger.Ledger, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronPlan training server. Generate six-week strength and conditioning plans, inspect plan days, record completed sets, and query the personal-record ledger for weight suggestions."),
	)

	h := &handlers{ds: ds, plans: plans, ledger: ledger, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolGetPlanDay, Handler: h.getPlanDay},
		server.ServerTool{Tool: toolRecordSet, Handler: h.recordSet},
		server.ServerTool{Tool: toolSuggestWeight, Handler: h.suggestWeight},
		server.ServerTool{Tool: toolGetPRHistory, Handler: h.getPRHistory},
		server.ServerTool{Tool: toolListBenchmarks, Handler: h.listBenchmarks},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCurrentPlan, Handler: h.currentPlan},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds     DataSource
	plans  *planner.Service
	ledger *prledger.Ledger
	log    *slog.Logger
}

// --- Resource definitions ---

var resCurrentPlan = mcp.NewResource(
	"ironplan://current_plan",
	"Current Plan",
	mcp.WithResourceDescription("The stored six-week plan: weeks with their days, rest markers, and total session time"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"ironplan://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with their muscle-group and category assignments"),
	mcp.WithMIMEType("application/json"),
)
