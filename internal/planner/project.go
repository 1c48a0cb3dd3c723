package planner

import (
	"fmt"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// Project flattens a composed plan into the four persistence relations.
// Parent links are slice indexes; the storage layer resolves them to row ids
// on insert. Missing strings coerce to empty, numerics to integers.
func Project(plan *models.Plan, cat *catalog.Catalog) *models.PlanSnapshot {
	snap := &models.PlanSnapshot{}

	for w := range plan.Weeks {
		week := &plan.Weeks[w]
		weekIndex := len(snap.Weeks)
		snap.Weeks = append(snap.Weeks, models.PlanWeekRow{
			Number: week.Number,
			Notes:  fmt.Sprintf("Week %d starting %s", week.Number, week.Days[0].Date.Format("2006-01-02")),
		})

		for d := range week.Days {
			day := &week.Days[d]
			dayIndex := len(snap.Days)
			snap.Days = append(snap.Days, models.PlanDayRow{
				WeekIndex: weekIndex,
				DayNumber: d + 1,
				IsRestDay: day.Rest,
				TotalTime: day.TotalTime,
			})
			if day.Rest {
				continue
			}

			for s := range day.Sessions {
				session := &day.Sessions[s]
				sessionIndex := len(snap.Sessions)
				snap.Sessions = append(snap.Sessions, models.PlanSessionRow{
					DayIndex:     dayIndex,
					Type:         string(session.Type),
					TargetMuscle: session.FocusMuscle,
					Duration:     session.TimeMin,
					Details:      session.Details,
				})

				for _, row := range session.Exercises {
					exerciseID := 0
					if id, ok := cat.ExerciseNameToID(row.Name); ok {
						exerciseID = id
					}
					snap.Exercises = append(snap.Exercises, models.PlanSessionExerciseRow{
						SessionIndex:   sessionIndex,
						ExerciseName:   row.Name,
						ExerciseID:     exerciseID,
						SetNumber:      row.Set,
						Reps:           row.Reps,
						Intensity:      row.Intensity,
						Rest:           row.RestSec,
						Notes:          row.Notes,
						ExerciseOrder:  row.ExerciseOrder,
						Tempo:          row.Tempo,
						ExpectedWeight: row.ExpectedWeight,
						Equipment:      row.Equipment,
					})
				}
			}
		}
	}
	return snap
}
