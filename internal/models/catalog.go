package models

// Exercise is a catalog entry. Muscle-group and category membership live in
// the two mapping tables, not on the exercise itself.
type Exercise struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Equipment string `json:"equipment,omitempty"`
}

// MuscleGroup is one of the six canonical groups.
type MuscleGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category tags exercises for generator pools (Heavy, Olympic, Muscular
// Endurance, Cooldown, and the "wod" family).
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ExerciseMuscleMap is a row of map_exercise_muscle_groups.
type ExerciseMuscleMap struct {
	ExerciseID    int `json:"exercise_id"`
	MuscleGroupID int `json:"musclegroup_id"`
}

// ExerciseCategoryMap is a row of map_exercise_categories.
type ExerciseCategoryMap struct {
	ExerciseID int `json:"exercise_id"`
	CategoryID int `json:"category_id"`
}

// BenchmarkWorkout is a named benchmark (Girl/Hero style) with per-level
// targets as free text.
type BenchmarkWorkout struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	WorkoutType   string `json:"workout_type"`
	Description   string `json:"description"`
	Beginner      string `json:"beginner"`
	Intermediate  string `json:"intermediate"`
	Advanced      string `json:"advanced"`
	Elite         string `json:"elite"`
	EstimatedTime string `json:"estimated_time"`
	WodwellURL    string `json:"wodwell_url,omitempty"`
}

// Skill identifies a trainable skill (e.g. double-unders, handstand walk).
type Skill struct {
	ID   int    `json:"skill_id"`
	Name string `json:"skill_name"`
}

// SkillPlan is the week-specific progression for a skill.
type SkillPlan struct {
	SkillID int         `json:"skill_id"`
	Week    int         `json:"week"`
	Items   []SkillItem `json:"session_plan"`
	Focus   string      `json:"focus,omitempty"`
}

// SkillItem is one ordered drill inside a skill plan. All fields except Name
// are optional in the source data.
type SkillItem struct {
	Name           string `json:"name"`
	Sets           int    `json:"sets,omitempty"`
	Reps           string `json:"reps,omitempty"`
	Intensity      string `json:"intensity,omitempty"`
	Rest           int    `json:"rest,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Tempo          string `json:"tempo,omitempty"`
	ExpectedWeight string `json:"expected_weight,omitempty"`
	Equipment      string `json:"equipment,omitempty"`
}

// CatalogData is the raw table snapshot the Catalog indexes are built from.
// Loaded once per composition.
type CatalogData struct {
	Exercises    []Exercise
	MuscleGroups []MuscleGroup
	Categories   []Category
	MuscleMaps   []ExerciseMuscleMap
	CategoryMaps []ExerciseCategoryMap
	Benchmarks   []BenchmarkWorkout
	Skills       []Skill
	SkillPlans   []SkillPlan
}
