package mcp

import (
	"context"
	"time"

	"github.com/claude/ironplan/internal/planner"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate and store a new six-week training plan. Replaces any previously stored plan."),
	mcp.WithString("start_date", mcp.Required(), mcp.Description("First day of the plan (YYYY-MM-DD, a Monday)")),
	mcp.WithString("skill", mcp.Description("Skill to practice on Tuesdays (e.g. 'Double Unders'). Falls back to the server default.")),
	mcp.WithNumber("seed", mcp.Description("Random seed for reproducible plans. Omit for a clock-derived seed.")),
	mcp.WithNumber("run_minutes", mcp.Description("Thursday Zone 2 run duration in minutes. Defaults to the server setting.")),
	mcp.WithNumber("five_k_minutes", mcp.Description("Current 5k time in minutes, used to derive the Zone 2 pace.")),
)

var toolGetPlanDay = mcp.NewTool("get_plan_day",
	mcp.WithDescription("Retrieve one plan day's sessions with their exercise rows, including suggested weights where a PR exists for a percent-intensity row."),
	mcp.WithNumber("day_id", mcp.Required(), mcp.Description("Database ID of the plan day (from the current_plan resource)")),
)

var toolRecordSet = mcp.NewTool("record_set",
	mcp.WithDescription("Record a completed set. Feeds the PR ledger: a new record is stored only when the Epley estimate beats the current effective 1RM."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name as it appears in the catalog")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted in kilograms")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions completed")),
	mcp.WithString("source_set_id", mcp.Description("Stable ID of the originating set. Generated when omitted.")),
)

var toolSuggestWeight = mcp.NewTool("suggest_weight",
	mcp.WithDescription("Convert a percent-of-1RM prescription into kilograms using the exercise's effective max."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithNumber("percent", mcp.Required(), mcp.Description("Prescribed intensity as a percent of 1RM (e.g. 75)")),
)

var toolGetPRHistory = mcp.NewTool("get_pr_history",
	mcp.WithDescription("List an exercise's full PR ledger, newest first. Entries carry a calculated or manual 1RM."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
)

var toolListBenchmarks = mcp.NewTool("list_benchmarks",
	mcp.WithDescription("List the benchmark workout library with target times per experience level."),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startStr, err := req.RequireString("start_date")
	if err != nil {
		return mcp.NewToolResultError("start_date parameter is required"), nil
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return mcp.NewToolResultError("start_date must be YYYY-MM-DD"), nil
	}

	genReq := planner.GenerateRequest{
		StartDate:      start,
		Skill:          req.GetString("skill", ""),
		RunDurationMin: req.GetInt("run_minutes", 0),
		FiveKTimeMin:   req.GetFloat("five_k_minutes", 0),
	}
	if v := req.GetInt("seed", 0); v != 0 {
		seed := int64(v)
		genReq.Seed = &seed
	}

	plan, err := h.plans.Generate(ctx, genReq)
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"start_date": plan.StartDate.Format("2006-01-02"),
		"skill":      plan.Skill,
		"weeks":      len(plan.Weeks),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlanDay(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayID, err := req.RequireInt("day_id")
	if err != nil {
		return mcp.NewToolResultError("day_id parameter is required"), nil
	}

	sessions, err := h.ds.QueryDaySessions(ctx, dayID)
	if err != nil {
		h.log.Error("mcp get_plan_day", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) recordSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}

	sourceSetID := req.GetString("source_set_id", "")
	if sourceSetID == "" {
		sourceSetID = uuid.NewString()
	}

	recorded, err := h.ledger.RecordCompletion(ctx, exercise, weight, reps, sourceSetID)
	if err != nil {
		h.log.Error("mcp record_set", "error", err)
		return mcp.NewToolResultError("recording failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"recorded":      recorded,
		"source_set_id": sourceSetID,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) suggestWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	percent, err := req.RequireFloat("percent")
	if err != nil {
		return mcp.NewToolResultError("percent parameter is required"), nil
	}

	suggested, err := h.ledger.SuggestWeight(ctx, exercise, percent)
	if err != nil {
		h.log.Error("mcp suggest_weight", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise": exercise,
		"percent":  percent,
		"weight":   suggested,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPRHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	history, err := h.ledger.History(ctx, exercise)
	if err != nil {
		h.log.Error("mcp get_pr_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listBenchmarks(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := h.ds.LoadCatalog(ctx)
	if err != nil {
		h.log.Error("mcp list_benchmarks", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(data.Benchmarks)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
