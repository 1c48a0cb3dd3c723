package planner

import (
	"fmt"
	"strconv"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

const (
	skillDefaultIntensity = "Skill Focus"
	skillDefaultRestSec   = 30
	skillTimeMin          = 15
)

// SkillSession expands the week's entry of the skill-progression table into
// exercise rows. A missing skill or missing week yields an empty session
// with an explanatory details string, never an error.
func SkillSession(cat *catalog.Catalog, skillName string, week int) models.SessionPlan {
	plan := models.SessionPlan{
		Type:        models.SessionSkill,
		TimeMin:     skillTimeMin,
		FocusMuscle: "Skill Work",
	}

	id, ok := cat.SkillID(skillName)
	if !ok {
		plan.Details = fmt.Sprintf("No skill named %q in the catalog", skillName)
		return plan
	}
	sp, ok := cat.SkillPlanFor(id, week)
	if !ok {
		plan.Details = fmt.Sprintf("No week %d plan for skill %q", week, skillName)
		return plan
	}

	plan.Details = fmt.Sprintf("%s progression, week %d", skillName, week)
	if sp.Focus != "" {
		plan.Details += ": " + sp.Focus
	}
	for i, item := range sp.Items {
		row := models.ExerciseRow{
			Name:           item.Name,
			Set:            i + 1,
			Reps:           item.Reps,
			Intensity:      item.Intensity,
			RestSec:        item.Rest,
			Notes:          item.Notes,
			ExerciseOrder:  "Sequential",
			Tempo:          item.Tempo,
			ExpectedWeight: item.ExpectedWeight,
			Equipment:      item.Equipment,
		}
		if item.Sets > 0 {
			row.Notes = appendNote(row.Notes, strconv.Itoa(item.Sets)+" sets")
		}
		if row.Intensity == "" {
			row.Intensity = skillDefaultIntensity
		}
		if row.RestSec == 0 {
			row.RestSec = skillDefaultRestSec
		}
		plan.Exercises = append(plan.Exercises, row)
	}
	return plan
}

func appendNote(notes, extra string) string {
	if notes == "" {
		return extra
	}
	return notes + "; " + extra
}
