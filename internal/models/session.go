package models

import "time"

// SessionType tags a generated session.
type SessionType string

const (
	SessionWarmup    SessionType = "Warmup"
	SessionHeavy     SessionType = "Heavy"
	SessionOlympic   SessionType = "Olympic"
	SessionRun       SessionType = "Run"
	SessionWOD       SessionType = "WOD"
	SessionBenchmark SessionType = "Benchmark"
	SessionLight     SessionType = "Light"
	SessionSkill     SessionType = "Skill"
	SessionCooldown  SessionType = "Cooldown"
)

// Stimulus names for conditioning work.
const (
	StimulusVO2       = "VO2 Max"
	StimulusLactate   = "Lactate Threshold"
	StimulusAnaerobic = "Anaerobic"
	StimulusGirlHero  = "Girl/Hero"
)

// ExerciseRow is the canonical per-exercise record persisted for a session.
type ExerciseRow struct {
	Name           string `json:"name"`
	Set            int    `json:"set"`
	Reps           string `json:"reps"`
	Intensity      string `json:"intensity"`
	RestSec        int    `json:"rest"`
	Notes          string `json:"notes"`
	ExerciseOrder  string `json:"exercise_order"`
	Tempo          string `json:"tempo"`
	ExpectedWeight string `json:"expected_weight"`
	Equipment      string `json:"equipment"`
}

// SetScheme is one prescribed set of a Heavy or Olympic session, with the
// intensity kept numeric (percent of effective 1RM).
type SetScheme struct {
	Exercise  string  `json:"exercise"`
	Intensity float64 `json:"intensity"`
	Reps      int     `json:"reps"`
	RestSec   int     `json:"rest"`
	Warmup    bool    `json:"warmup"`
}

// Activity is a timed warmup/cooldown movement.
type Activity struct {
	Name          string `json:"name"`
	DurationSec   int    `json:"duration"`
	TransitionSec int    `json:"transition"`
	Focus         string `json:"focus,omitempty"`
}

// Superset pairs a primary movement with its opposing-group partner.
type Superset struct {
	Primary  string `json:"primary"`
	Opposing string `json:"opposing"`
}

// WODExercise carries the format- and stimulus-stamped details of one WOD
// movement. Zero values mean the attribute is absent; the time estimator
// branches on presence.
type WODExercise struct {
	Name     string `json:"name"`
	Weight   string `json:"weight"`
	Reps     string `json:"reps"`
	Sets     int    `json:"sets,omitempty"`
	Work     string `json:"work,omitempty"`
	Rest     string `json:"rest,omitempty"`
	Rounds   int    `json:"rounds,omitempty"`
	Duration string `json:"duration,omitempty"`
	Goal     string `json:"goal,omitempty"`
	Order    string `json:"exercise_order"`
}

// WODDetails is the WOD-specific payload, including the scaler's attempt
// count for the in-band invariant.
type WODDetails struct {
	Format    string        `json:"format"`
	Stimulus  string        `json:"stimulus"`
	Exercises []WODExercise `json:"exercises"`
	Attempts  int           `json:"attempts"`
}

// BenchmarkLevels is the Benchmark session payload.
type BenchmarkLevels struct {
	Name          string `json:"name"`
	WorkoutType   string `json:"workout_type"`
	Beginner      string `json:"beginner"`
	Intermediate  string `json:"intermediate"`
	Advanced      string `json:"advanced"`
	Elite         string `json:"elite"`
	EstimatedTime string `json:"estimated_time"`
	URL           string `json:"url,omitempty"`
}

// SessionPlan is the output of one generator. Exercises is the persistence
// projection of the session; the typed payloads keep generator-specific
// structure (set schemes, activities, supersets, WOD details).
type SessionPlan struct {
	Type        SessionType      `json:"type"`
	Details     string           `json:"details"`
	TimeMin     int              `json:"time"`
	FocusMuscle string           `json:"focus_muscle"`
	Exercises   []ExerciseRow    `json:"exercises,omitempty"`
	Sets        []SetScheme      `json:"sets,omitempty"`
	Activities  []Activity       `json:"activities,omitempty"`
	Supersets   []Superset       `json:"supersets,omitempty"`
	WOD         *WODDetails      `json:"wod,omitempty"`
	Benchmark   *BenchmarkLevels `json:"levels,omitempty"`
}

// DailyPlan is one calendar day: either the rest sentinel or an ordered list
// of sessions plus the aggregate time estimate.
type DailyPlan struct {
	Date          time.Time     `json:"date"`
	Rest          bool          `json:"rest"`
	Details       string        `json:"details,omitempty"`
	Stimulus      string        `json:"stimulus,omitempty"`
	TargetMuscles []string      `json:"target_muscles,omitempty"`
	Sessions      []SessionPlan `json:"sessions,omitempty"`
	TotalTime     int           `json:"total_time"`
}

// Session returns the day's session of the given type, or nil.
func (d *DailyPlan) Session(t SessionType) *SessionPlan {
	for i := range d.Sessions {
		if d.Sessions[i].Type == t {
			return &d.Sessions[i]
		}
	}
	return nil
}

// PlanWeek is seven DailyPlans, Monday first.
type PlanWeek struct {
	Number int          `json:"number"`
	Days   [7]DailyPlan `json:"days"`
}

// Plan is a fully expanded six-week program.
type Plan struct {
	StartDate time.Time   `json:"start_date"`
	Skill     string      `json:"skill"`
	Weeks     [6]PlanWeek `json:"weeks"`
}

// DayConfig is one weekday of the framework: either the rest sentinel or a
// set of generator targets and flags.
type DayConfig struct {
	Day      string   `json:"day"`
	Rest     bool     `json:"rest,omitempty"`
	Heavy    []string `json:"heavy,omitempty"`
	WOD      []string `json:"wod,omitempty"`
	Stimulus string   `json:"stimulus,omitempty"`
	Light    []string `json:"light,omitempty"`
	Olympic  bool     `json:"olympic,omitempty"`
	Skill    bool     `json:"skill,omitempty"`
	Run      bool     `json:"run,omitempty"`
}

// WeekFramework is the Mon..Sun schedule of one week.
type WeekFramework [7]DayConfig
