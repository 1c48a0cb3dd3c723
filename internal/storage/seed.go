package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/ironplan/internal/models"
)

// ReplaceCatalog swaps the reference tables for the given snapshot: mapping
// tables first, then parents, then re-insert. Used by the seed CLI.
func (db *DB) ReplaceCatalog(ctx context.Context, data models.CatalogData) error {
	clearOrder := []string{
		"map_exercise_muscle_groups", "map_exercise_categories", "skill_plans",
		"exercises", "muscle_groups", "categories", "benchmark_wods", "skills",
	}
	for _, table := range clearOrder {
		if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, ex := range data.Exercises {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO exercises (id, name, equipment) VALUES ($1, $2, NULLIF($3, ''))`,
			ex.ID, ex.Name, ex.Equipment); err != nil {
			return fmt.Errorf("inserting exercise %q: %w", ex.Name, err)
		}
	}
	for _, mg := range data.MuscleGroups {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO muscle_groups (id, name) VALUES ($1, $2)`, mg.ID, mg.Name); err != nil {
			return fmt.Errorf("inserting muscle group %q: %w", mg.Name, err)
		}
	}
	for _, cat := range data.Categories {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2)`, cat.ID, cat.Name); err != nil {
			return fmt.Errorf("inserting category %q: %w", cat.Name, err)
		}
	}
	for _, m := range data.MuscleMaps {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO map_exercise_muscle_groups (exercise_id, musclegroup_id) VALUES ($1, $2)`,
			m.ExerciseID, m.MuscleGroupID); err != nil {
			return fmt.Errorf("inserting muscle mapping %d/%d: %w", m.ExerciseID, m.MuscleGroupID, err)
		}
	}
	for _, m := range data.CategoryMaps {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO map_exercise_categories (exercise_id, category_id) VALUES ($1, $2)`,
			m.ExerciseID, m.CategoryID); err != nil {
			return fmt.Errorf("inserting category mapping %d/%d: %w", m.ExerciseID, m.CategoryID, err)
		}
	}
	for _, b := range data.Benchmarks {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO benchmark_wods (id, name, workout_type, description, beginner, intermediate,
			 advanced, elite, estimated_time, wodwell_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))`,
			b.ID, b.Name, b.WorkoutType, b.Description, b.Beginner, b.Intermediate,
			b.Advanced, b.Elite, b.EstimatedTime, b.WodwellURL); err != nil {
			return fmt.Errorf("inserting benchmark %q: %w", b.Name, err)
		}
	}
	for _, s := range data.Skills {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO skills (skill_id, skill_name) VALUES ($1, $2)`, s.ID, s.Name); err != nil {
			return fmt.Errorf("inserting skill %q: %w", s.Name, err)
		}
	}
	for _, sp := range data.SkillPlans {
		items, err := json.Marshal(sp.Items)
		if err != nil {
			return fmt.Errorf("encoding skill plan %d/%d: %w", sp.SkillID, sp.Week, err)
		}
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO skill_plans (skill_id, week, session_plan, focus) VALUES ($1, $2, $3, NULLIF($4, ''))`,
			sp.SkillID, sp.Week, items, sp.Focus); err != nil {
			return fmt.Errorf("inserting skill plan %d/%d: %w", sp.SkillID, sp.Week, err)
		}
	}
	return nil
}
