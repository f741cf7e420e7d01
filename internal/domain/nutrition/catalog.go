package nutrition

// ExerciseUnit is the measurement an exercise amount is expressed in.
type ExerciseUnit string

const (
	UnitReps     ExerciseUnit = "reps"
	UnitMinutes  ExerciseUnit = "minutes"
	UnitDistance ExerciseUnit = "distance"
)

// ExerciseType is a static catalog entry describing one exercise and the
// coefficients needed to estimate its energy cost. CaloriesPerUnit, when set,
// is calibrated at a 60 kg reference body weight.
type ExerciseType struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Unit            ExerciseUnit `json:"unit"`
	UnitLabel       string       `json:"unitLabel"`
	MET             float64      `json:"met"`
	CaloriesPerUnit float64      `json:"caloriesPerUnit,omitempty"` // 0 means unset
	Description     string       `json:"description,omitempty"`
}

// exerciseCatalog is the immutable reference table of supported exercises.
// MET values follow the compendium convention: kcal = MET x weight(kg) x hours.
var exerciseCatalog = []ExerciseType{
	{
		ID:              "push_ups",
		Name:            "Push-ups",
		Category:        "strength",
		Unit:            UnitReps,
		UnitLabel:       "reps",
		MET:             3.8,
		CaloriesPerUnit: 0.5,
		Description:     "Standard push-ups",
	},
	{
		ID:              "squats",
		Name:            "Squats",
		Category:        "strength",
		Unit:            UnitReps,
		UnitLabel:       "reps",
		MET:             5.0,
		CaloriesPerUnit: 0.5,
		Description:     "Standard bodyweight squats",
	},
	{
		ID:          "plank",
		Name:        "Plank",
		Category:    "strength",
		Unit:        UnitMinutes,
		UnitLabel:   "min",
		MET:         4.0,
		Description: "Holding the plank position",
	},
	{
		ID:              "burpees",
		Name:            "Burpees",
		Category:        "strength",
		Unit:            UnitReps,
		UnitLabel:       "reps",
		MET:             8.0,
		CaloriesPerUnit: 1.2,
		Description:     "Full-body burpees",
	},
	{
		ID:              "pull_ups",
		Name:            "Pull-ups",
		Category:        "strength",
		Unit:            UnitReps,
		UnitLabel:       "reps",
		MET:             4.2,
		CaloriesPerUnit: 1.0,
		Description:     "Pull-ups on a bar",
	},
	{
		ID:          "jogging",
		Name:        "Jogging",
		Category:    "cardio",
		Unit:        UnitMinutes,
		UnitLabel:   "min",
		MET:         7.0,
		Description: "Light jogging, around 8 km/h",
	},
	{
		ID:          "walking",
		Name:        "Walking",
		Category:    "cardio",
		Unit:        UnitMinutes,
		UnitLabel:   "min",
		MET:         3.5,
		Description: "Walking at a normal pace",
	},
	{
		ID:          "cycling",
		Name:        "Cycling",
		Category:    "cardio",
		Unit:        UnitMinutes,
		UnitLabel:   "min",
		MET:         8.0,
		Description: "Cycling at moderate speed",
	},
	{
		ID:          "swimming",
		Name:        "Swimming",
		Category:    "cardio",
		Unit:        UnitMinutes,
		UnitLabel:   "min",
		MET:         8.0,
		Description: "Freestyle swimming",
	},
	{
		ID:          "running_distance",
		Name:        "Running (distance)",
		Category:    "cardio",
		Unit:        UnitDistance,
		UnitLabel:   "km",
		MET:         9.8, // around 10 km/h
		Description: "Running, specified by distance",
	},
	{
		ID:          "walking_distance",
		Name:        "Walking (distance)",
		Category:    "cardio",
		Unit:        UnitDistance,
		UnitLabel:   "km",
		MET:         3.5,
		Description: "Walking, specified by distance",
	},
}

// Exercises returns a copy of the full catalog.
func Exercises() []ExerciseType {
	out := make([]ExerciseType, len(exerciseCatalog))
	copy(out, exerciseCatalog)

	return out
}

// ExercisesByCategory returns the catalog entries in the given category.
func ExercisesByCategory(category string) []ExerciseType {
	var out []ExerciseType
	for _, ex := range exerciseCatalog {
		if ex.Category == category {
			out = append(out, ex)
		}
	}

	return out
}

// LookupExercise resolves a catalog id. The second return value reports
// whether the id is known.
func LookupExercise(id string) (ExerciseType, bool) {
	for _, ex := range exerciseCatalog {
		if ex.ID == id {
			return ex, true
		}
	}

	return ExerciseType{}, false
}
