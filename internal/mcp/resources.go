package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) currentPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	weeks, err := h.ds.QueryPlan(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(weeks)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cat, err := h.ds.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"exercises":           cat.Exercises,
		"muscle_groups":       cat.MuscleGroups,
		"categories":          cat.Categories,
		"exercise_muscles":    cat.MuscleMaps,
		"exercise_categories": cat.CategoryMaps,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
