package nutrition

import "strings"

const (
	// DefaultBodyWeightKg substitutes for a missing or non-positive body
	// weight so an estimate is always produced.
	DefaultBodyWeightKg = 65.0

	// referenceWeightKg is the body weight CaloriesPerUnit constants are
	// calibrated at; actual weight scales them linearly.
	referenceWeightKg = 60.0

	// Assumed speeds for converting a distance into an implied duration.
	runningSpeedKmh = 10.0
	walkingSpeedKmh = 4.0
)

// EstimateCaloriesByID resolves the exercise id against the catalog and
// estimates calories burned. Unknown ids and non-positive amounts yield 0
// rather than an error; the surrounding layer decides whether to treat that
// as a rejection.
func EstimateCaloriesByID(exerciseTypeID string, amount, weightKg float64) int {
	ex, ok := LookupExercise(exerciseTypeID)
	if !ok || amount <= 0 {
		return 0
	}

	return EstimateCalories(ex, amount, weightKg)
}

// EstimateCalories estimates the energy cost of performing amount units of the
// given exercise at the given body weight, dispatching on the exercise's unit:
//
//   - reps: per-rep constant scaled by weight relative to the 60 kg reference,
//     falling back to the minutes formula (one rep approximates one minute)
//     when no constant is calibrated;
//   - minutes: the standard MET formula, kcal = MET x weight(kg) x hours;
//   - distance: an implied duration from a fixed assumed speed (10 km/h for
//     running-style ids, 4 km/h otherwise), then the MET formula.
//
// An unrecognized unit yields 0.
func EstimateCalories(ex ExerciseType, amount, weightKg float64) int {
	if weightKg <= 0 {
		weightKg = DefaultBodyWeightKg
	}

	switch ex.Unit {
	case UnitReps:
		if ex.CaloriesPerUnit > 0 {
			return round(ex.CaloriesPerUnit * (weightKg / referenceWeightKg) * amount)
		}

		return round(ex.MET * weightKg * (amount / 60))

	case UnitMinutes:
		return round(ex.MET * weightKg * (amount / 60))

	case UnitDistance:
		speed := walkingSpeedKmh
		if strings.Contains(ex.ID, "running") {
			speed = runningSpeedKmh
		}
		timeInHours := amount / speed

		return round(ex.MET * weightKg * timeInHours)

	default:
		return 0
	}
}
