package planner

import (
	"math/rand"
	"time"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// Composer walks the weekly framework and invokes the session generators for
// each day. One Compose call produces one Plan; the catalog snapshot is
// read-only for the run.
type Composer struct {
	Catalog *catalog.Catalog

	// RunDurationMin and FiveKTimeMin parameterize Thursday's run; zero
	// values take the generator defaults.
	RunDurationMin int
	FiveKTimeMin   float64
}

// Compose expands the six-week framework into a fully dated plan. All
// randomness flows through rng; a fixed seed reproduces the plan exactly for
// the same catalog snapshot.
func (c *Composer) Compose(startDate time.Time, skillName string, rng *rand.Rand) *models.Plan {
	framework := BuildFramework(rng)

	plan := &models.Plan{StartDate: startDate, Skill: skillName}
	date := startDate
	for w := 0; w < 6; w++ {
		week := models.PlanWeek{Number: w + 1}
		for d := 0; d < 7; d++ {
			week.Days[d] = c.composeDay(framework[w][d], w+1, skillName, date, rng)
			date = date.AddDate(0, 0, 1)
		}
		plan.Weeks[w] = week
	}
	return plan
}

func (c *Composer) composeDay(cfg models.DayConfig, week int, skillName string, date time.Time, rng *rand.Rand) models.DailyPlan {
	if cfg.Rest {
		return models.DailyPlan{Date: date, Rest: true, Details: "Rest day"}
	}

	day := models.DailyPlan{
		Date:          date,
		Stimulus:      cfg.Stimulus,
		TargetMuscles: uniqueMuscles(cfg),
	}
	addSession := func(s models.SessionPlan) {
		day.Sessions = append(day.Sessions, s)
		day.TotalTime += s.TimeMin
	}

	if !cfg.Run {
		addSession(Warmup(c.Catalog, day.TargetMuscles, rng))
	}
	if len(cfg.Heavy) > 0 {
		addSession(Heavy(c.Catalog, cfg.Heavy[0], week, rng))
	}
	if cfg.Olympic {
		addSession(Olympic(c.Catalog, week, rng))
	}
	if cfg.Run {
		addSession(Run(c.RunDurationMin, c.FiveKTimeMin))
	}
	if len(cfg.WOD) > 0 && cfg.Stimulus != "" {
		addSession(WOD(c.Catalog, cfg.WOD[0], cfg.Stimulus, rng))
	}
	if cfg.Stimulus == models.StimulusGirlHero {
		addSession(Benchmark(c.Catalog, rng))
	}
	if !cfg.Skill && !cfg.Run {
		addSession(Light(c.Catalog, lightTarget(cfg), rng))
	}
	if cfg.Skill {
		addSession(SkillSession(c.Catalog, skillName, week))
	}
	if !cfg.Run {
		addSession(Cooldown(c.Catalog, day.TargetMuscles, rng))
	}
	return day
}

// lightTarget resolves the Light session's muscle: Core on olympic days,
// else the day's light slot, else Core.
func lightTarget(cfg models.DayConfig) string {
	if cfg.Olympic {
		return "Core"
	}
	if len(cfg.Light) > 0 {
		return cfg.Light[0]
	}
	return "Core"
}

func uniqueMuscles(cfg models.DayConfig) []string {
	var out []string
	seen := make(map[string]bool)
	for _, group := range [][]string{cfg.Heavy, cfg.WOD, cfg.Light} {
		for _, m := range group {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}
