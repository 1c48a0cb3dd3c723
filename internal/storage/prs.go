package storage

import (
	"context"
	"fmt"

	"github.com/claude/ironplan/internal/models"
	"github.com/jackc/pgx/v5"
)

// LatestPR returns the most recent ledger record for an exercise, nil when
// none exists.
func (db *DB) LatestPR(ctx context.Context, exerciseName string) (*models.PRRecord, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, exercise_name, calculated_1rm, manual_1rm, COALESCE(source_set_id, ''), date
		 FROM exercise_maxes
		 WHERE LOWER(exercise_name) = LOWER($1)
		 ORDER BY date DESC, id DESC LIMIT 1`, exerciseName)

	var rec models.PRRecord
	err := row.Scan(&rec.ID, &rec.ExerciseName, &rec.Calculated1RM, &rec.Manual1RM, &rec.SourceSetID, &rec.Date)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest PR: %w", err)
	}
	return &rec, nil
}

// InsertPR appends a ledger record. Records are never updated or deleted.
func (db *DB) InsertPR(ctx context.Context, rec models.PRRecord) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_maxes (exercise_name, calculated_1rm, manual_1rm, source_set_id, date)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)`,
		rec.ExerciseName, rec.Calculated1RM, rec.Manual1RM, rec.SourceSetID, rec.Date)
	if err != nil {
		return fmt.Errorf("inserting PR: %w", err)
	}
	return nil
}

// PRHistory returns an exercise's ledger records, newest first.
func (db *DB) PRHistory(ctx context.Context, exerciseName string) ([]models.PRRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, exercise_name, calculated_1rm, manual_1rm, COALESCE(source_set_id, ''), date
		 FROM exercise_maxes
		 WHERE LOWER(exercise_name) = LOWER($1)
		 ORDER BY date DESC, id DESC`, exerciseName)
	if err != nil {
		return nil, fmt.Errorf("querying PR history: %w", err)
	}
	defer rows.Close()

	var result []models.PRRecord
	for rows.Next() {
		var rec models.PRRecord
		if err := rows.Scan(&rec.ID, &rec.ExerciseName, &rec.Calculated1RM, &rec.Manual1RM, &rec.SourceSetID, &rec.Date); err != nil {
			return nil, fmt.Errorf("scanning PR: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}
