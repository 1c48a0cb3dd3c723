// Package seed parses the YAML catalog document consumed by ironplan-seed.
package seed

import (
	"fmt"
	"io"

	"github.com/claude/ironplan/internal/models"
	"gopkg.in/yaml.v3"
)

type document struct {
	Exercises []struct {
		ID        int    `yaml:"id"`
		Name      string `yaml:"name"`
		Equipment string `yaml:"equipment"`
	} `yaml:"exercises"`
	MuscleGroups []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"muscle_groups"`
	Categories []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	ExerciseMuscles []struct {
		ExerciseID    int `yaml:"exercise_id"`
		MuscleGroupID int `yaml:"musclegroup_id"`
	} `yaml:"exercise_muscles"`
	ExerciseCategories []struct {
		ExerciseID int `yaml:"exercise_id"`
		CategoryID int `yaml:"category_id"`
	} `yaml:"exercise_categories"`
	BenchmarkWods []struct {
		ID            int    `yaml:"id"`
		Name          string `yaml:"name"`
		WorkoutType   string `yaml:"workout_type"`
		Description   string `yaml:"description"`
		Beginner      string `yaml:"beginner"`
		Intermediate  string `yaml:"intermediate"`
		Advanced      string `yaml:"advanced"`
		Elite         string `yaml:"elite"`
		EstimatedTime string `yaml:"estimated_time"`
		WodwellURL    string `yaml:"wodwell_url"`
	} `yaml:"benchmark_wods"`
	Skills []struct {
		ID   int    `yaml:"skill_id"`
		Name string `yaml:"skill_name"`
	} `yaml:"skills"`
	SkillPlans []struct {
		SkillID int    `yaml:"skill_id"`
		Week    int    `yaml:"week"`
		Focus   string `yaml:"focus"`
		Items   []struct {
			Name           string `yaml:"name"`
			Sets           int    `yaml:"sets"`
			Reps           string `yaml:"reps"`
			Intensity      string `yaml:"intensity"`
			Rest           int    `yaml:"rest"`
			Notes          string `yaml:"notes"`
			Tempo          string `yaml:"tempo"`
			ExpectedWeight string `yaml:"expected_weight"`
			Equipment      string `yaml:"equipment"`
		} `yaml:"session_plan"`
	} `yaml:"skill_plans"`
}

// Parse reads a YAML seed document into a catalog snapshot.
func Parse(r io.Reader) (models.CatalogData, error) {
	var doc document
	var data models.CatalogData

	raw, err := io.ReadAll(r)
	if err != nil {
		return data, fmt.Errorf("reading seed document: %w", err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return data, fmt.Errorf("parsing seed document: %w", err)
	}

	for _, e := range doc.Exercises {
		if e.Name == "" {
			return data, fmt.Errorf("exercise %d has no name", e.ID)
		}
		data.Exercises = append(data.Exercises, models.Exercise{ID: e.ID, Name: e.Name, Equipment: e.Equipment})
	}
	for _, m := range doc.MuscleGroups {
		data.MuscleGroups = append(data.MuscleGroups, models.MuscleGroup{ID: m.ID, Name: m.Name})
	}
	for _, c := range doc.Categories {
		data.Categories = append(data.Categories, models.Category{ID: c.ID, Name: c.Name})
	}
	for _, m := range doc.ExerciseMuscles {
		data.MuscleMaps = append(data.MuscleMaps, models.ExerciseMuscleMap{ExerciseID: m.ExerciseID, MuscleGroupID: m.MuscleGroupID})
	}
	for _, m := range doc.ExerciseCategories {
		data.CategoryMaps = append(data.CategoryMaps, models.ExerciseCategoryMap{ExerciseID: m.ExerciseID, CategoryID: m.CategoryID})
	}
	for _, b := range doc.BenchmarkWods {
		data.Benchmarks = append(data.Benchmarks, models.BenchmarkWorkout{
			ID: b.ID, Name: b.Name, WorkoutType: b.WorkoutType, Description: b.Description,
			Beginner: b.Beginner, Intermediate: b.Intermediate, Advanced: b.Advanced, Elite: b.Elite,
			EstimatedTime: b.EstimatedTime, WodwellURL: b.WodwellURL,
		})
	}
	for _, s := range doc.Skills {
		data.Skills = append(data.Skills, models.Skill{ID: s.ID, Name: s.Name})
	}
	for _, sp := range doc.SkillPlans {
		if sp.Week < 1 || sp.Week > 6 {
			return data, fmt.Errorf("skill plan %d has week %d outside 1..6", sp.SkillID, sp.Week)
		}
		plan := models.SkillPlan{SkillID: sp.SkillID, Week: sp.Week, Focus: sp.Focus}
		for _, it := range sp.Items {
			plan.Items = append(plan.Items, models.SkillItem{
				Name: it.Name, Sets: it.Sets, Reps: it.Reps, Intensity: it.Intensity,
				Rest: it.Rest, Notes: it.Notes, Tempo: it.Tempo,
				ExpectedWeight: it.ExpectedWeight, Equipment: it.Equipment,
			})
		}
		data.SkillPlans = append(data.SkillPlans, plan)
	}
	return data, nil
}
