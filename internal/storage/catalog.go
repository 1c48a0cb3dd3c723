package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/ironplan/internal/models"
)

// LoadCatalog reads the reference tables into a snapshot for one composition
// run. The catalog is loaded once per Compose call, never per generator.
func (db *DB) LoadCatalog(ctx context.Context) (models.CatalogData, error) {
	var data models.CatalogData

	rows, err := db.Pool.Query(ctx, `SELECT id, name, COALESCE(equipment, '') FROM exercises ORDER BY id`)
	if err != nil {
		return data, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Equipment); err != nil {
			return data, fmt.Errorf("scanning exercise: %w", err)
		}
		data.Exercises = append(data.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return data, err
	}

	if err := db.scanIDName(ctx, `SELECT id, name FROM muscle_groups ORDER BY id`, func(id int, name string) {
		data.MuscleGroups = append(data.MuscleGroups, models.MuscleGroup{ID: id, Name: name})
	}); err != nil {
		return data, fmt.Errorf("querying muscle groups: %w", err)
	}
	if err := db.scanIDName(ctx, `SELECT id, name FROM categories ORDER BY id`, func(id int, name string) {
		data.Categories = append(data.Categories, models.Category{ID: id, Name: name})
	}); err != nil {
		return data, fmt.Errorf("querying categories: %w", err)
	}

	if err := db.scanIDPair(ctx, `SELECT exercise_id, musclegroup_id FROM map_exercise_muscle_groups`, func(a, b int) {
		data.MuscleMaps = append(data.MuscleMaps, models.ExerciseMuscleMap{ExerciseID: a, MuscleGroupID: b})
	}); err != nil {
		return data, fmt.Errorf("querying muscle mappings: %w", err)
	}
	if err := db.scanIDPair(ctx, `SELECT exercise_id, category_id FROM map_exercise_categories`, func(a, b int) {
		data.CategoryMaps = append(data.CategoryMaps, models.ExerciseCategoryMap{ExerciseID: a, CategoryID: b})
	}); err != nil {
		return data, fmt.Errorf("querying category mappings: %w", err)
	}

	benchRows, err := db.Pool.Query(ctx,
		`SELECT id, name, COALESCE(workout_type, ''), COALESCE(description, ''),
		 COALESCE(beginner, ''), COALESCE(intermediate, ''), COALESCE(advanced, ''), COALESCE(elite, ''),
		 COALESCE(estimated_time, ''), COALESCE(wodwell_url, '')
		 FROM benchmark_wods ORDER BY id`)
	if err != nil {
		return data, fmt.Errorf("querying benchmark wods: %w", err)
	}
	defer benchRows.Close()
	for benchRows.Next() {
		var b models.BenchmarkWorkout
		if err := benchRows.Scan(&b.ID, &b.Name, &b.WorkoutType, &b.Description,
			&b.Beginner, &b.Intermediate, &b.Advanced, &b.Elite,
			&b.EstimatedTime, &b.WodwellURL); err != nil {
			return data, fmt.Errorf("scanning benchmark wod: %w", err)
		}
		data.Benchmarks = append(data.Benchmarks, b)
	}
	if err := benchRows.Err(); err != nil {
		return data, err
	}

	if err := db.scanIDName(ctx, `SELECT skill_id, skill_name FROM skills ORDER BY skill_id`, func(id int, name string) {
		data.Skills = append(data.Skills, models.Skill{ID: id, Name: name})
	}); err != nil {
		return data, fmt.Errorf("querying skills: %w", err)
	}

	spRows, err := db.Pool.Query(ctx,
		`SELECT skill_id, week, session_plan, COALESCE(focus, '') FROM skill_plans ORDER BY skill_id, week`)
	if err != nil {
		return data, fmt.Errorf("querying skill plans: %w", err)
	}
	defer spRows.Close()
	for spRows.Next() {
		var sp models.SkillPlan
		var items []byte
		if err := spRows.Scan(&sp.SkillID, &sp.Week, &items, &sp.Focus); err != nil {
			return data, fmt.Errorf("scanning skill plan: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &sp.Items); err != nil {
				return data, fmt.Errorf("decoding skill plan %d/%d: %w", sp.SkillID, sp.Week, err)
			}
		}
		data.SkillPlans = append(data.SkillPlans, sp)
	}
	return data, spRows.Err()
}

func (db *DB) scanIDName(ctx context.Context, query string, collect func(id int, name string)) error {
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		collect(id, name)
	}
	return rows.Err()
}

func (db *DB) scanIDPair(ctx context.Context, query string, collect func(a, b int)) error {
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a, b int
		if err := rows.Scan(&a, &b); err != nil {
			return err
		}
		collect(a, b)
	}
	return rows.Err()
}
