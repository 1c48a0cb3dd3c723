package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/ironplan/internal/models"
)

// SavePlan replaces the persisted plan with the given snapshot: destructive
// deletes children-first, then inserts resolving index references to row
// ids. Not transactional; a partial failure leaves the store inconsistent
// and the caller decides whether to retry (accepted limitation).
func (db *DB) SavePlan(ctx context.Context, snap *models.PlanSnapshot) error {
	for _, table := range []string{"plan_session_exercises", "plan_sessions", "plan_days", "plan_weeks"} {
		if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE id > 0"); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	weekIDs := make([]int, len(snap.Weeks))
	for i, w := range snap.Weeks {
		if err := db.Pool.QueryRow(ctx,
			`INSERT INTO plan_weeks (number, notes) VALUES ($1, $2) RETURNING id`,
			w.Number, w.Notes).Scan(&weekIDs[i]); err != nil {
			return fmt.Errorf("inserting plan week %d: %w", w.Number, err)
		}
	}

	dayIDs := make([]int, len(snap.Days))
	for i, d := range snap.Days {
		if err := db.Pool.QueryRow(ctx,
			`INSERT INTO plan_days (week_id, day_number, is_rest_day, total_time)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			weekIDs[d.WeekIndex], d.DayNumber, d.IsRestDay, d.TotalTime).Scan(&dayIDs[i]); err != nil {
			return fmt.Errorf("inserting plan day %d: %w", d.DayNumber, err)
		}
	}

	sessionIDs := make([]int, len(snap.Sessions))
	for i, s := range snap.Sessions {
		if err := db.Pool.QueryRow(ctx,
			`INSERT INTO plan_sessions (day_id, type, target_muscle, duration, details, performance_targets)
			 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')) RETURNING id`,
			dayIDs[s.DayIndex], s.Type, s.TargetMuscle, s.Duration, s.Details, s.PerformanceTargets).Scan(&sessionIDs[i]); err != nil {
			return fmt.Errorf("inserting plan session %s: %w", s.Type, err)
		}
	}

	return db.insertSessionExercises(ctx, snap.Exercises, sessionIDs)
}

func (db *DB) insertSessionExercises(ctx context.Context, rows []models.PlanSessionExerciseRow, sessionIDs []int) error {
	if len(rows) == 0 {
		return nil
	}

	const cols = 14
	query := `INSERT INTO plan_session_exercises (session_id, exercise_name, exercise_id,
		set_number, reps, intensity, rest, notes, exercise_order, tempo,
		expected_weight, equipment, completed_reps, completed_load) VALUES `
	args := make([]any, 0, len(rows)*cols)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * cols
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13, base+14,
		))
		args = append(args, sessionIDs[r.SessionIndex], r.ExerciseName, nullableID(r.ExerciseID),
			r.SetNumber, r.Reps, r.Intensity, r.Rest, r.Notes, r.ExerciseOrder, r.Tempo,
			r.ExpectedWeight, r.Equipment, r.CompletedReps, r.CompletedLoad)
	}

	query += strings.Join(valueStrings, ",")
	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting session exercises: %w", err)
	}
	return nil
}

func nullableID(id int) any {
	if id == 0 {
		return nil
	}
	return id
}

// PlanWeekSummary is a persisted week with its day rows, for API reads.
type PlanWeekSummary struct {
	ID     int           `json:"id"`
	Number int           `json:"number"`
	Notes  string        `json:"notes"`
	Days   []PlanDayInfo `json:"days"`
}

// PlanDayInfo is a persisted day row.
type PlanDayInfo struct {
	ID        int  `json:"id"`
	DayNumber int  `json:"day_number"`
	IsRestDay bool `json:"is_rest_day"`
	TotalTime int  `json:"total_time"`
}

// QueryPlan reads the persisted plan outline (weeks and days).
func (db *DB) QueryPlan(ctx context.Context) ([]PlanWeekSummary, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, number, notes FROM plan_weeks ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying plan weeks: %w", err)
	}
	defer rows.Close()

	var weeks []PlanWeekSummary
	byID := make(map[int]int)
	for rows.Next() {
		var w PlanWeekSummary
		if err := rows.Scan(&w.ID, &w.Number, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning plan week: %w", err)
		}
		byID[w.ID] = len(weeks)
		weeks = append(weeks, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dayRows, err := db.Pool.Query(ctx,
		`SELECT id, week_id, day_number, is_rest_day, total_time FROM plan_days ORDER BY week_id, day_number`)
	if err != nil {
		return nil, fmt.Errorf("querying plan days: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d PlanDayInfo
		var weekID int
		if err := dayRows.Scan(&d.ID, &weekID, &d.DayNumber, &d.IsRestDay, &d.TotalTime); err != nil {
			return nil, fmt.Errorf("scanning plan day: %w", err)
		}
		if idx, ok := byID[weekID]; ok {
			weeks[idx].Days = append(weeks[idx].Days, d)
		}
	}
	return weeks, dayRows.Err()
}

// SessionDetail is a persisted session with its exercise rows.
type SessionDetail struct {
	ID           int                  `json:"id"`
	Type         string               `json:"type"`
	TargetMuscle string               `json:"target_muscle"`
	Duration     int                  `json:"duration"`
	Details      string               `json:"details"`
	Exercises    []SessionExerciseRow `json:"exercises"`
}

// SessionExerciseRow is a persisted exercise row, with an optional suggested
// weight filled in by the caller from the PR ledger.
type SessionExerciseRow struct {
	ID              int      `json:"id"`
	ExerciseName    string   `json:"exercise_name"`
	ExerciseID      *int     `json:"exercise_id,omitempty"`
	SetNumber       int      `json:"set_number"`
	Reps            string   `json:"reps"`
	Intensity       string   `json:"intensity"`
	Rest            int      `json:"rest"`
	Notes           string   `json:"notes"`
	ExerciseOrder   string   `json:"exercise_order"`
	Tempo           string   `json:"tempo"`
	ExpectedWeight  string   `json:"expected_weight"`
	Equipment       string   `json:"equipment"`
	SuggestedWeight *float64 `json:"suggested_weight,omitempty"`
}

// QueryDaySessions reads a day's sessions and their exercise rows.
func (db *DB) QueryDaySessions(ctx context.Context, dayID int) ([]SessionDetail, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, type, target_muscle, duration, details
		 FROM plan_sessions WHERE day_id = $1 ORDER BY id`, dayID)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionDetail
	byID := make(map[int]int)
	for rows.Next() {
		var s SessionDetail
		if err := rows.Scan(&s.ID, &s.Type, &s.TargetMuscle, &s.Duration, &s.Details); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		byID[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	exRows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.session_id, e.exercise_name, e.exercise_id, e.set_number, e.reps,
		 e.intensity, e.rest, e.notes, e.exercise_order, e.tempo, e.expected_weight, e.equipment
		 FROM plan_session_exercises e
		 JOIN plan_sessions s ON s.id = e.session_id
		 WHERE s.day_id = $1
		 ORDER BY e.session_id, e.set_number, e.id`, dayID)
	if err != nil {
		return nil, fmt.Errorf("querying session exercises: %w", err)
	}
	defer exRows.Close()
	for exRows.Next() {
		var r SessionExerciseRow
		var sessionID int
		if err := exRows.Scan(&r.ID, &sessionID, &r.ExerciseName, &r.ExerciseID, &r.SetNumber, &r.Reps,
			&r.Intensity, &r.Rest, &r.Notes, &r.ExerciseOrder, &r.Tempo, &r.ExpectedWeight, &r.Equipment); err != nil {
			return nil, fmt.Errorf("scanning session exercise: %w", err)
		}
		if idx, ok := byID[sessionID]; ok {
			sessions[idx].Exercises = append(sessions[idx].Exercises, r)
		}
	}
	return sessions, exRows.Err()
}
