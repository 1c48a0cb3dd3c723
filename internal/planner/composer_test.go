package planner

import (
	"testing"
	"time"

	"github.com/claude/ironplan/internal/models"
)

func composeTestPlan(t *testing.T, seed int64) *models.Plan {
	t.Helper()
	composer := &Composer{Catalog: testCatalog(), RunDurationMin: 45, FiveKTimeMin: 24}
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC) // a Monday
	return composer.Compose(start, "Double Unders", testRand(seed))
}

// TestComposeCalendar checks the date spine: 42 consecutive days, Sundays
// resting, Thursdays running.
func TestComposeCalendar(t *testing.T) {
	plan := composeTestPlan(t, 1)

	want := plan.StartDate
	for w := range plan.Weeks {
		if plan.Weeks[w].Number != w+1 {
			t.Errorf("week %d number = %d", w, plan.Weeks[w].Number)
		}
		for d, day := range plan.Weeks[w].Days {
			if !day.Date.Equal(want) {
				t.Fatalf("week %d day %d date = %v, want %v", w+1, d, day.Date, want)
			}
			want = want.AddDate(0, 0, 1)

			if d == 6 {
				if !day.Rest || len(day.Sessions) != 0 {
					t.Errorf("week %d Sunday not a bare rest day", w+1)
				}
				continue
			}
			if day.Rest {
				t.Errorf("week %d day %d unexpectedly resting", w+1, d)
			}
			if d == 3 {
				if day.Session(models.SessionRun) == nil {
					t.Errorf("week %d Thursday has no run", w+1)
				}
				if len(day.Sessions) != 1 {
					t.Errorf("week %d Thursday has %d sessions, want 1", w+1, len(day.Sessions))
				}
			} else if day.Session(models.SessionRun) != nil {
				t.Errorf("week %d day %d has a run", w+1, d)
			}
		}
	}
}

// TestComposeBookends: every non-rest, non-run day opens with a warmup and
// closes with a cooldown.
func TestComposeBookends(t *testing.T) {
	plan := composeTestPlan(t, 2)
	for w := range plan.Weeks {
		for d, day := range plan.Weeks[w].Days {
			if day.Rest || d == 3 {
				continue
			}
			if len(day.Sessions) < 2 {
				t.Fatalf("week %d day %d has %d sessions", w+1, d, len(day.Sessions))
			}
			if got := day.Sessions[0].Type; got != models.SessionWarmup {
				t.Errorf("week %d day %d opens with %s", w+1, d, got)
			}
			if got := day.Sessions[len(day.Sessions)-1].Type; got != models.SessionCooldown {
				t.Errorf("week %d day %d closes with %s", w+1, d, got)
			}
		}
	}
}

// TestComposeSaturdays: odd weeks run the benchmark (no WOD session, no
// target), even weeks an anaerobic WOD.
func TestComposeSaturdays(t *testing.T) {
	plan := composeTestPlan(t, 3)

	oddSat := plan.Weeks[0].Days[5]
	if oddSat.Session(models.SessionBenchmark) == nil {
		t.Error("odd Saturday has no benchmark session")
	}
	if oddSat.Session(models.SessionWOD) != nil {
		t.Error("odd Saturday has a WOD session")
	}
	if oddSat.Session(models.SessionOlympic) == nil {
		t.Error("odd Saturday has no olympic session")
	}
	if oddSat.Stimulus != models.StimulusGirlHero {
		t.Errorf("odd Saturday stimulus = %q", oddSat.Stimulus)
	}

	evenSat := plan.Weeks[1].Days[5]
	if evenSat.Session(models.SessionBenchmark) != nil {
		t.Error("even Saturday has a benchmark session")
	}
	wod := evenSat.Session(models.SessionWOD)
	if wod == nil {
		t.Fatal("even Saturday has no WOD session")
	}
	if wod.WOD.Stimulus != models.StimulusAnaerobic {
		t.Errorf("even Saturday WOD stimulus = %q", wod.WOD.Stimulus)
	}
}

// TestComposeTuesdays carry skill work instead of a light session.
func TestComposeTuesdays(t *testing.T) {
	plan := composeTestPlan(t, 4)
	for w := range plan.Weeks {
		tue := plan.Weeks[w].Days[1]
		if tue.Session(models.SessionSkill) == nil {
			t.Errorf("week %d Tuesday has no skill session", w+1)
		}
		if tue.Session(models.SessionLight) != nil {
			t.Errorf("week %d Tuesday has a light session", w+1)
		}
		if tue.Session(models.SessionOlympic) == nil {
			t.Errorf("week %d Tuesday has no olympic session", w+1)
		}
	}
}

// TestComposeTotalTime: the day total is the sum of its session budgets.
func TestComposeTotalTime(t *testing.T) {
	plan := composeTestPlan(t, 5)
	for w := range plan.Weeks {
		for d, day := range plan.Weeks[w].Days {
			sum := 0
			for _, s := range day.Sessions {
				sum += s.TimeMin
			}
			if day.TotalTime != sum {
				t.Errorf("week %d day %d TotalTime = %d, want %d", w+1, d, day.TotalTime, sum)
			}
		}
	}
}

// TestComposeDeterministic: the same seed and catalog reproduce the plan.
func TestComposeDeterministic(t *testing.T) {
	a := composeTestPlan(t, 42)
	b := composeTestPlan(t, 42)

	for w := range a.Weeks {
		for d := range a.Weeks[w].Days {
			da, db := a.Weeks[w].Days[d], b.Weeks[w].Days[d]
			if len(da.Sessions) != len(db.Sessions) {
				t.Fatalf("week %d day %d session counts differ", w+1, d)
			}
			for s := range da.Sessions {
				if da.Sessions[s].Details != db.Sessions[s].Details {
					t.Errorf("week %d day %d session %d details differ:\n%q\n%q",
						w+1, d, s, da.Sessions[s].Details, db.Sessions[s].Details)
				}
			}
		}
	}
}

// TestComposeTargetMuscles: the day header collects heavy, wod, and light
// targets without duplicates.
func TestComposeTargetMuscles(t *testing.T) {
	plan := composeTestPlan(t, 6)
	mon := plan.Weeks[0].Days[0]
	want := []string{"Shoulders", "Back", "Quads"}
	if len(mon.TargetMuscles) != len(want) {
		t.Fatalf("TargetMuscles = %v, want %v", mon.TargetMuscles, want)
	}
	for i, m := range want {
		if mon.TargetMuscles[i] != m {
			t.Errorf("TargetMuscles[%d] = %q, want %q", i, mon.TargetMuscles[i], m)
		}
	}
}
