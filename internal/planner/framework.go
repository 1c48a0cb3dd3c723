package planner

import (
	"math/rand"

	"github.com/claude/ironplan/internal/models"
)

// rotationSlot is one weekday's muscle targets for a given week parity.
type rotationSlot struct {
	heavy []string
	wod   []string
	light []string
}

// rotation holds the muscle-rotation tables as data keyed by parity and
// weekday index (0 = Monday). Days absent from the map carry no muscle
// targets (Thursday's run, Sunday's rest).
var rotation = map[string]map[int]rotationSlot{
	"odd": {
		0: {heavy: []string{"Shoulders"}, wod: []string{"Back"}, light: []string{"Quads"}},
		1: {wod: []string{"Core"}},
		2: {heavy: []string{"Glutes/Hamstrings"}, wod: []string{"Shoulders"}, light: []string{"Back"}},
		4: {heavy: []string{"Chest"}, wod: []string{"Quads"}, light: []string{"Glutes/Hamstrings"}},
		5: {light: []string{"Chest"}},
	},
	"even": {
		0: {heavy: []string{"Shoulders"}, wod: []string{"Chest"}, light: []string{"Glutes/Hamstrings"}},
		1: {wod: []string{"Core"}},
		2: {heavy: []string{"Quads"}, wod: []string{"Back"}, light: []string{"Shoulders"}},
		4: {heavy: []string{"Back"}, wod: []string{"Glutes/Hamstrings"}, light: []string{"Chest"}},
		5: {wod: []string{"Core"}, light: []string{"Back"}},
	},
}

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// randomStimulusDays are the weekdays whose stimulus is drawn uniformly from
// {VO2 Max, Lactate Threshold}.
var randomStimulusDays = map[int]bool{0: true, 1: true, 2: true, 4: true}

// BuildFramework produces the six-week schedule. Week parity rotates the
// muscle tables; each Mon/Tue/Wed/Fri draws its stimulus from the injected
// random source, in weekday order.
func BuildFramework(rng *rand.Rand) [6]models.WeekFramework {
	var weeks [6]models.WeekFramework
	for w := 0; w < 6; w++ {
		weekNum := w + 1
		parity := "odd"
		if weekNum%2 == 0 {
			parity = "even"
		}
		weeks[w] = buildWeek(parity, rng)
	}
	return weeks
}

func buildWeek(parity string, rng *rand.Rand) models.WeekFramework {
	var week models.WeekFramework
	slots := rotation[parity]

	for d := 0; d < 7; d++ {
		cfg := models.DayConfig{Day: dayNames[d]}
		switch {
		case d == 6:
			cfg.Rest = true
		case d == 3:
			cfg.Run = true
		default:
			slot := slots[d]
			cfg.Heavy = slot.heavy
			cfg.WOD = slot.wod
			cfg.Light = slot.light
			if randomStimulusDays[d] {
				cfg.Stimulus = pickString(rng, []string{models.StimulusVO2, models.StimulusLactate})
			}
			if d == 5 {
				if parity == "odd" {
					cfg.Stimulus = models.StimulusGirlHero
				} else {
					cfg.Stimulus = models.StimulusAnaerobic
				}
			}
			if d == 1 || d == 5 {
				cfg.Olympic = true
			}
			if d == 1 {
				cfg.Skill = true
			}
		}
		week[d] = cfg
	}
	return week
}
