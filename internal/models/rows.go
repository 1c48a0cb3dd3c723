package models

import "time"

// PlanWeekRow is a row ready for insertion into the plan_weeks table.
type PlanWeekRow struct {
	Number int
	Notes  string
}

// PlanDayRow is a row ready for insertion into the plan_days table.
// WeekIndex refers into the snapshot's Weeks slice; the storage layer
// resolves it to a database id on insert.
type PlanDayRow struct {
	WeekIndex int
	DayNumber int
	IsRestDay bool
	TotalTime int
}

// PlanSessionRow is a row ready for insertion into the plan_sessions table.
type PlanSessionRow struct {
	DayIndex           int
	Type               string
	TargetMuscle       string
	Duration           int
	Details            string
	PerformanceTargets string
}

// PlanSessionExerciseRow is a row ready for insertion into the
// plan_session_exercises table. Completion fields stay empty at projection
// time; session execution fills them in later.
type PlanSessionExerciseRow struct {
	SessionIndex   int
	ExerciseName   string
	ExerciseID     int
	SetNumber      int
	Reps           string
	Intensity      string
	Rest           int
	Notes          string
	ExerciseOrder  string
	Tempo          string
	ExpectedWeight string
	Equipment      string
	CompletedReps  *int
	CompletedLoad  *float64
}

// PlanSnapshot is the flattened relational form of a Plan, parent references
// expressed as slice indexes until the sink assigns ids.
type PlanSnapshot struct {
	Weeks     []PlanWeekRow
	Days      []PlanDayRow
	Sessions  []PlanSessionRow
	Exercises []PlanSessionExerciseRow
}

// PRRecord is one row of the exercise_maxes ledger. At least one of
// Calculated1RM/Manual1RM is set; records are append-only.
type PRRecord struct {
	ID            int       `json:"id"`
	ExerciseName  string    `json:"exercise_name"`
	Calculated1RM *float64  `json:"calculated_1rm,omitempty"`
	Manual1RM     *float64  `json:"manual_1rm,omitempty"`
	SourceSetID   string    `json:"source_set_id,omitempty"`
	Date          time.Time `json:"date"`
}

// EffectiveMax returns the record's max, preferring a manual entry over a
// calculated one.
func (r *PRRecord) EffectiveMax() *float64 {
	if r == nil {
		return nil
	}
	if r.Manual1RM != nil {
		return r.Manual1RM
	}
	return r.Calculated1RM
}
