// Package catalog holds the read-only, in-memory snapshot of the exercise
// reference tables used by one composition run.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/claude/ironplan/internal/models"
)

// Opposing maps each muscle group to its anatomical antagonist, keyed by
// normalized name, valued by canonical name.
var Opposing = map[string]string{
	"chest":             "Back",
	"back":              "Chest",
	"quads":             "Glutes/Hamstrings",
	"glutes/hamstrings": "Quads",
	"shoulders":         "Core",
	"core":              "Shoulders",
}

// OpposingGroup returns the antagonist of the given muscle group, or "" when
// the name is not one of the six canonical groups.
func OpposingGroup(muscle string) string {
	return Opposing[Normalize(muscle)]
}

// Normalize flattens a raw table-store value to a lowercase string: the first
// element of a list, the "text" key of a record, otherwise the stringified
// value. Source rows arrive in all three shapes.
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		if len(t) == 0 {
			return ""
		}
		return Normalize(t[0])
	case []string:
		if len(t) == 0 {
			return ""
		}
		return Normalize(t[0])
	case map[string]any:
		return Normalize(t["text"])
	case string:
		return strings.ToLower(strings.TrimSpace(t))
	default:
		return strings.ToLower(strings.TrimSpace(fmt.Sprint(t)))
	}
}

type skillKey struct {
	skillID int
	week    int
}

// Catalog indexes the reference tables for generator lookups. Missing
// lookups return empty results, never errors.
type Catalog struct {
	exercises  map[int]models.Exercise
	ordered    []models.Exercise // stable id order, for deterministic sampling
	byMuscle   map[string][]int
	byCategory map[string][]int
	musclesOf  map[int][]string
	nameToID   map[string]int
	benchmarks []models.BenchmarkWorkout
	skillIDs   map[string]int
	skillPlans map[skillKey]models.SkillPlan
}

// New builds the catalog indexes from a raw table snapshot.
func New(data models.CatalogData) *Catalog {
	c := &Catalog{
		exercises:  make(map[int]models.Exercise, len(data.Exercises)),
		byMuscle:   make(map[string][]int),
		byCategory: make(map[string][]int),
		musclesOf:  make(map[int][]string),
		nameToID:   make(map[string]int, len(data.Exercises)),
		benchmarks: data.Benchmarks,
		skillIDs:   make(map[string]int, len(data.Skills)),
		skillPlans: make(map[skillKey]models.SkillPlan, len(data.SkillPlans)),
	}

	for _, ex := range data.Exercises {
		c.exercises[ex.ID] = ex
		c.nameToID[Normalize(ex.Name)] = ex.ID
	}
	c.ordered = make([]models.Exercise, 0, len(c.exercises))
	for _, ex := range data.Exercises {
		c.ordered = append(c.ordered, ex)
	}
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })

	muscleNames := make(map[int]string, len(data.MuscleGroups))
	for _, mg := range data.MuscleGroups {
		muscleNames[mg.ID] = mg.Name
	}
	for _, m := range data.MuscleMaps {
		name, ok := muscleNames[m.MuscleGroupID]
		if !ok {
			continue
		}
		if _, ok := c.exercises[m.ExerciseID]; !ok {
			continue
		}
		key := Normalize(name)
		c.byMuscle[key] = append(c.byMuscle[key], m.ExerciseID)
		c.musclesOf[m.ExerciseID] = append(c.musclesOf[m.ExerciseID], name)
	}

	categoryNames := make(map[int]string, len(data.Categories))
	for _, cat := range data.Categories {
		categoryNames[cat.ID] = cat.Name
	}
	for _, m := range data.CategoryMaps {
		name, ok := categoryNames[m.CategoryID]
		if !ok {
			continue
		}
		if _, ok := c.exercises[m.ExerciseID]; !ok {
			continue
		}
		key := Normalize(name)
		c.byCategory[key] = append(c.byCategory[key], m.ExerciseID)
	}

	for key := range c.byMuscle {
		sort.Ints(c.byMuscle[key])
	}
	for key := range c.byCategory {
		sort.Ints(c.byCategory[key])
	}

	for _, s := range data.Skills {
		c.skillIDs[Normalize(s.Name)] = s.ID
	}
	for _, sp := range data.SkillPlans {
		c.skillPlans[skillKey{sp.SkillID, sp.Week}] = sp
	}

	return c
}

// AllExercises returns every exercise in stable id order.
func (c *Catalog) AllExercises() []models.Exercise {
	return c.ordered
}

// Exercise returns the exercise with the given id.
func (c *Catalog) Exercise(id int) (models.Exercise, bool) {
	ex, ok := c.exercises[id]
	return ex, ok
}

// ExerciseNameToID resolves an exercise name case-insensitively.
func (c *Catalog) ExerciseNameToID(name string) (int, bool) {
	id, ok := c.nameToID[Normalize(name)]
	return id, ok
}

// ExercisesByMuscle returns the exercises mapped to the given muscle group.
func (c *Catalog) ExercisesByMuscle(muscle string) []models.Exercise {
	return c.resolve(c.byMuscle[Normalize(muscle)])
}

// ExercisesByCategory returns the exercises in the named category. The "wod"
// family is matched by substring, so "wod" collects every category whose
// name contains it.
func (c *Catalog) ExercisesByCategory(category string) []models.Exercise {
	key := Normalize(category)
	if strings.Contains(key, "wod") {
		var ids []int
		seen := make(map[int]bool)
		for name, members := range c.byCategory {
			if !strings.Contains(name, "wod") {
				continue
			}
			for _, id := range members {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
		sort.Ints(ids)
		return c.resolve(ids)
	}
	return c.resolve(c.byCategory[key])
}

// resolve maps exercise ids to their records, skipping unknown ids.
func (c *Catalog) resolve(ids []int) []models.Exercise {
	out := make([]models.Exercise, 0, len(ids))
	for _, id := range ids {
		if ex, ok := c.exercises[id]; ok {
			out = append(out, ex)
		}
	}
	return out
}

// MusclesOf returns the muscle-group names mapped to an exercise.
func (c *Catalog) MusclesOf(exerciseID int) []string {
	return c.musclesOf[exerciseID]
}

// Benchmarks returns the benchmark workout library.
func (c *Catalog) Benchmarks() []models.BenchmarkWorkout {
	return c.benchmarks
}

// SkillID resolves a skill name case-insensitively.
func (c *Catalog) SkillID(name string) (int, bool) {
	id, ok := c.skillIDs[Normalize(name)]
	return id, ok
}

// SkillPlanFor returns the week-specific plan for a skill.
func (c *Catalog) SkillPlanFor(skillID, week int) (models.SkillPlan, bool) {
	sp, ok := c.skillPlans[skillKey{skillID, week}]
	return sp, ok
}

// Intersect returns the exercises present in both slices, in a's order.
func Intersect(a, b []models.Exercise) []models.Exercise {
	inB := make(map[int]bool, len(b))
	for _, ex := range b {
		inB[ex.ID] = true
	}
	var out []models.Exercise
	for _, ex := range a {
		if inB[ex.ID] {
			out = append(out, ex)
		}
	}
	return out
}
