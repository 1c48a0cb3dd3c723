package planner

import (
	"reflect"
	"testing"

	"github.com/claude/ironplan/internal/models"
)

// TestBuildFrameworkOddWeek checks the odd-parity rotation cells and the fixed
// day roles.
func TestBuildFrameworkOddWeek(t *testing.T) {
	weeks := BuildFramework(testRand(1))
	week := weeks[0]

	mon := week[0]
	if !reflect.DeepEqual(mon.Heavy, []string{"Shoulders"}) {
		t.Errorf("Mon heavy = %v, want [Shoulders]", mon.Heavy)
	}
	if !reflect.DeepEqual(mon.WOD, []string{"Back"}) {
		t.Errorf("Mon wod = %v, want [Back]", mon.WOD)
	}
	if !reflect.DeepEqual(mon.Light, []string{"Quads"}) {
		t.Errorf("Mon light = %v, want [Quads]", mon.Light)
	}

	tue := week[1]
	if !reflect.DeepEqual(tue.WOD, []string{"Core"}) {
		t.Errorf("Tue wod = %v, want [Core]", tue.WOD)
	}
	if !tue.Olympic || !tue.Skill {
		t.Errorf("Tue olympic/skill = %v/%v, want true/true", tue.Olympic, tue.Skill)
	}

	wed := week[2]
	if !reflect.DeepEqual(wed.Heavy, []string{"Glutes/Hamstrings"}) {
		t.Errorf("Wed heavy = %v, want [Glutes/Hamstrings]", wed.Heavy)
	}
	if !reflect.DeepEqual(wed.WOD, []string{"Shoulders"}) {
		t.Errorf("Wed wod = %v, want [Shoulders]", wed.WOD)
	}
	if !reflect.DeepEqual(wed.Light, []string{"Back"}) {
		t.Errorf("Wed light = %v, want [Back]", wed.Light)
	}

	if !week[3].Run {
		t.Error("Thu is not a run day")
	}

	sat := week[5]
	if sat.Stimulus != models.StimulusGirlHero {
		t.Errorf("Sat stimulus = %q, want %q", sat.Stimulus, models.StimulusGirlHero)
	}
	if len(sat.Heavy) != 0 || len(sat.WOD) != 0 {
		t.Errorf("Sat heavy/wod = %v/%v, want empty", sat.Heavy, sat.WOD)
	}
	if !reflect.DeepEqual(sat.Light, []string{"Chest"}) {
		t.Errorf("Sat light = %v, want [Chest]", sat.Light)
	}
	if !sat.Olympic {
		t.Error("Sat olympic = false, want true")
	}

	if !week[6].Rest {
		t.Error("Sun is not a rest day")
	}
}

// TestBuildFrameworkEvenWeek checks the even-parity rotation cells.
func TestBuildFrameworkEvenWeek(t *testing.T) {
	weeks := BuildFramework(testRand(1))
	week := weeks[1]

	mon := week[0]
	if !reflect.DeepEqual(mon.Heavy, []string{"Shoulders"}) {
		t.Errorf("Mon heavy = %v, want [Shoulders]", mon.Heavy)
	}
	if !reflect.DeepEqual(mon.WOD, []string{"Chest"}) {
		t.Errorf("Mon wod = %v, want [Chest]", mon.WOD)
	}
	if !reflect.DeepEqual(mon.Light, []string{"Glutes/Hamstrings"}) {
		t.Errorf("Mon light = %v, want [Glutes/Hamstrings]", mon.Light)
	}

	wed := week[2]
	if !reflect.DeepEqual(wed.Heavy, []string{"Quads"}) {
		t.Errorf("Wed heavy = %v, want [Quads]", wed.Heavy)
	}

	fri := week[4]
	if !reflect.DeepEqual(fri.Heavy, []string{"Back"}) {
		t.Errorf("Fri heavy = %v, want [Back]", fri.Heavy)
	}
	if !reflect.DeepEqual(fri.WOD, []string{"Glutes/Hamstrings"}) {
		t.Errorf("Fri wod = %v, want [Glutes/Hamstrings]", fri.WOD)
	}

	sat := week[5]
	if sat.Stimulus != models.StimulusAnaerobic {
		t.Errorf("Sat stimulus = %q, want %q", sat.Stimulus, models.StimulusAnaerobic)
	}
	if !reflect.DeepEqual(sat.WOD, []string{"Core"}) {
		t.Errorf("Sat wod = %v, want [Core]", sat.WOD)
	}
}

// TestBuildFrameworkStimuli checks that the random-stimulus days only carry
// aerobic stimuli and the fixed days never do.
func TestBuildFrameworkStimuli(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		weeks := BuildFramework(testRand(seed))
		for w, week := range weeks {
			for _, d := range []int{0, 1, 2, 4} {
				s := week[d].Stimulus
				if s != models.StimulusVO2 && s != models.StimulusLactate {
					t.Fatalf("seed %d week %d day %d stimulus = %q", seed, w+1, d, s)
				}
			}
			if week[3].Stimulus != "" || week[6].Stimulus != "" {
				t.Fatalf("seed %d week %d: run/rest day carries a stimulus", seed, w+1)
			}
		}
	}
}

// TestBuildFrameworkParityCycle checks that weeks 1,3,5 share the odd table
// and weeks 2,4,6 the even one.
func TestBuildFrameworkParityCycle(t *testing.T) {
	weeks := BuildFramework(testRand(3))
	for _, w := range []int{0, 2, 4} {
		if got := weeks[w][5].Stimulus; got != models.StimulusGirlHero {
			t.Errorf("week %d Sat stimulus = %q, want Girl/Hero", w+1, got)
		}
	}
	for _, w := range []int{1, 3, 5} {
		if got := weeks[w][5].Stimulus; got != models.StimulusAnaerobic {
			t.Errorf("week %d Sat stimulus = %q, want Anaerobic", w+1, got)
		}
	}
}
