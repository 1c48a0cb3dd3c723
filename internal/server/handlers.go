package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/claude/ironplan/internal/planner"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type generateRequest struct {
	StartDate    string  `json:"start_date"`
	Skill        string  `json:"skill"`
	Seed         *int64  `json:"seed,omitempty"`
	RunMinutes   int     `json:"run_minutes,omitempty"`
	FiveKMinutes float64 `json:"five_k_minutes,omitempty"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	plan, err := s.plans.Generate(r.Context(), planner.GenerateRequest{
		StartDate:      start,
		Skill:          req.Skill,
		Seed:           req.Seed,
		RunDurationMin: req.RunMinutes,
		FiveKTimeMin:   req.FiveKMinutes,
	})
	if err != nil {
		s.log.Error("plan generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	sessions := 0
	for w := range plan.Weeks {
		for d := range plan.Weeks[w].Days {
			sessions += len(plan.Weeks[w].Days[d].Sessions)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start_date": plan.StartDate.Format("2006-01-02"),
		"skill":      plan.Skill,
		"weeks":      len(plan.Weeks),
		"sessions":   sessions,
	})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	weeks, err := s.db.QueryPlan(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, weeks)
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	dayID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day id must be an integer"})
		return
	}

	sessions, err := s.db.QueryDaySessions(r.Context(), dayID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Annotate percent-intensity rows with a ledger-based weight suggestion.
	for i := range sessions {
		for j := range sessions[i].Exercises {
			row := &sessions[i].Exercises[j]
			pct, ok := parsePercent(row.Intensity)
			if !ok {
				continue
			}
			suggested, err := s.ledger.SuggestWeight(r.Context(), row.ExerciseName, pct)
			if err != nil {
				s.log.Error("weight suggestion failed", "exercise", row.ExerciseName, "error", err)
				continue
			}
			row.SuggestedWeight = suggested
		}
	}
	writeJSON(w, http.StatusOK, sessions)
}

type completeSetRequest struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	SourceSetID  string  `json:"source_set_id,omitempty"`
}

func (s *Server) handleCompleteSet(w http.ResponseWriter, r *http.Request) {
	var req completeSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.SourceSetID == "" {
		req.SourceSetID = uuid.NewString()
	}

	recorded, err := s.ledger.RecordCompletion(r.Context(), req.ExerciseName, req.Weight, req.Reps, req.SourceSetID)
	if err != nil {
		s.log.Error("set completion failed", "exercise", req.ExerciseName, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recorded": recorded, "source_set_id": req.SourceSetID})
}

type manualPRRequest struct {
	ExerciseName string  `json:"exercise_name"`
	Manual1RM    float64 `json:"manual_1rm"`
}

func (s *Server) handleManualPR(w http.ResponseWriter, r *http.Request) {
	var req manualPRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.ledger.RecordManual(r.Context(), req.ExerciseName, req.Manual1RM); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (s *Server) handlePRHistory(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	history, err := s.ledger.History(r.Context(), exercise)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleSuggestWeight(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	percent, err := strconv.ParseFloat(r.URL.Query().Get("percent"), 64)
	if err != nil || percent <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "percent must be a positive number"})
		return
	}

	suggested, err := s.ledger.SuggestWeight(r.Context(), exercise, percent)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercise": exercise,
		"percent":  percent,
		"weight":   suggested,
	})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadCatalog(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data.Exercises)
}

func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	data, err := s.db.LoadCatalog(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, data.Benchmarks)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parsePercent reads a numeric percent prefix from an intensity string
// ("70% 1RM" → 70). Descriptive intensities return false.
func parsePercent(intensity string) (float64, bool) {
	idx := strings.Index(intensity, "%")
	if idx <= 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(intensity[:idx]), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
