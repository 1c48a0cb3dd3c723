package planner

import (
	"math/rand"

	"github.com/claude/ironplan/internal/catalog"
	"github.com/claude/ironplan/internal/models"
)

// testRand returns a deterministic random source for reproducible assertions.
func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// testCatalogData is a small but complete snapshot: every muscle group and
// category the generators draw from has members.
func testCatalogData() models.CatalogData {
	return models.CatalogData{
		Exercises: []models.Exercise{
			{ID: 1, Name: "Bench Press", Equipment: "Barbell"},
			{ID: 2, Name: "Overhead Press", Equipment: "Barbell"},
			{ID: 3, Name: "Back Squat", Equipment: "Barbell"},
			{ID: 4, Name: "Deadlift", Equipment: "Barbell"},
			{ID: 5, Name: "Barbell Row", Equipment: "Barbell"},
			{ID: 6, Name: "Power Clean", Equipment: "Barbell"},
			{ID: 7, Name: "Snatch", Equipment: "Barbell"},
			{ID: 8, Name: "Push-Up"},
			{ID: 9, Name: "Ring Row", Equipment: "Rings"},
			{ID: 10, Name: "Lunge"},
			{ID: 11, Name: "Plank"},
			{ID: 12, Name: "Lateral Raise", Equipment: "Dumbbells"},
			{ID: 13, Name: "Burpee"},
			{ID: 14, Name: "Box Jumping", Equipment: "Box"},
			{ID: 15, Name: "Thruster", Equipment: "Barbell"},
			{ID: 16, Name: "Rowing", Equipment: "Rower"},
			{ID: 17, Name: "Wall Ball", Equipment: "Medicine Ball"},
			{ID: 18, Name: "Kettlebell Swing", Equipment: "Kettlebell"},
			{ID: 19, Name: "Chest Stretch"},
			{ID: 20, Name: "Child's Pose"},
			{ID: 21, Name: "Hamstring Stretch"},
			{ID: 22, Name: "Quad Stretch"},
			{ID: 23, Name: "Shoulder Stretch"},
			{ID: 24, Name: "Cat-Cow"},
		},
		MuscleGroups: []models.MuscleGroup{
			{ID: 1, Name: "Chest"},
			{ID: 2, Name: "Back"},
			{ID: 3, Name: "Shoulders"},
			{ID: 4, Name: "Core"},
			{ID: 5, Name: "Quads"},
			{ID: 6, Name: "Glutes/Hamstrings"},
		},
		Categories: []models.Category{
			{ID: 1, Name: "Heavy"},
			{ID: 2, Name: "Olympic"},
			{ID: 3, Name: "Muscular Endurance"},
			{ID: 4, Name: "Cooldown"},
			{ID: 5, Name: "WOD"},
		},
		MuscleMaps: []models.ExerciseMuscleMap{
			{ExerciseID: 1, MuscleGroupID: 1},
			{ExerciseID: 2, MuscleGroupID: 3},
			{ExerciseID: 3, MuscleGroupID: 5},
			{ExerciseID: 4, MuscleGroupID: 6},
			{ExerciseID: 4, MuscleGroupID: 2},
			{ExerciseID: 5, MuscleGroupID: 2},
			{ExerciseID: 8, MuscleGroupID: 1},
			{ExerciseID: 9, MuscleGroupID: 2},
			{ExerciseID: 10, MuscleGroupID: 5},
			{ExerciseID: 10, MuscleGroupID: 6},
			{ExerciseID: 11, MuscleGroupID: 4},
			{ExerciseID: 12, MuscleGroupID: 3},
			{ExerciseID: 15, MuscleGroupID: 5},
			{ExerciseID: 15, MuscleGroupID: 3},
			{ExerciseID: 17, MuscleGroupID: 4},
			{ExerciseID: 18, MuscleGroupID: 6},
			{ExerciseID: 19, MuscleGroupID: 1},
			{ExerciseID: 21, MuscleGroupID: 6},
			{ExerciseID: 22, MuscleGroupID: 5},
			{ExerciseID: 23, MuscleGroupID: 3},
			{ExerciseID: 24, MuscleGroupID: 4},
		},
		CategoryMaps: []models.ExerciseCategoryMap{
			{ExerciseID: 1, CategoryID: 1},
			{ExerciseID: 2, CategoryID: 1},
			{ExerciseID: 3, CategoryID: 1},
			{ExerciseID: 4, CategoryID: 1},
			{ExerciseID: 5, CategoryID: 1},
			{ExerciseID: 6, CategoryID: 2},
			{ExerciseID: 7, CategoryID: 2},
			{ExerciseID: 8, CategoryID: 3},
			{ExerciseID: 8, CategoryID: 5},
			{ExerciseID: 9, CategoryID: 3},
			{ExerciseID: 9, CategoryID: 5},
			{ExerciseID: 10, CategoryID: 3},
			{ExerciseID: 11, CategoryID: 3},
			{ExerciseID: 12, CategoryID: 3},
			{ExerciseID: 13, CategoryID: 5},
			{ExerciseID: 14, CategoryID: 5},
			{ExerciseID: 15, CategoryID: 5},
			{ExerciseID: 16, CategoryID: 5},
			{ExerciseID: 17, CategoryID: 5},
			{ExerciseID: 18, CategoryID: 5},
			{ExerciseID: 19, CategoryID: 4},
			{ExerciseID: 20, CategoryID: 4},
			{ExerciseID: 21, CategoryID: 4},
			{ExerciseID: 22, CategoryID: 4},
			{ExerciseID: 23, CategoryID: 4},
			{ExerciseID: 24, CategoryID: 4},
		},
		Benchmarks: []models.BenchmarkWorkout{
			{
				ID: 42, Name: "Fran", WorkoutType: "For Time",
				Beginner: "8-10 min", Intermediate: "5-8 min", Advanced: "3-5 min", Elite: "Sub 3 min",
				EstimatedTime: "10 min",
			},
			{
				ID: 43, Name: "Murph", WorkoutType: "For Time",
				Beginner: "60+ min", Intermediate: "45-60 min", Advanced: "35-45 min", Elite: "Sub 35 min",
				EstimatedTime: "45 min",
			},
		},
		Skills: []models.Skill{{ID: 1, Name: "Double Unders"}},
		SkillPlans: []models.SkillPlan{
			{
				SkillID: 1, Week: 1, Focus: "Single-under rhythm",
				Items: []models.SkillItem{
					{Name: "Single Unders", Sets: 3, Reps: "50", Rest: 60},
					{Name: "Double Under Attempts", Reps: "10", Intensity: "Technique"},
				},
			},
		},
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(testCatalogData())
}
