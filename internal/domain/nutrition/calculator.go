// Package nutrition implements the pure computation core: daily target
// derivation from a physiological profile, exercise energy estimation via MET
// coefficients, and daily progress aggregation. Everything in this package is
// deterministic and free of I/O; callers are responsible for validating inputs
// before invoking it.
package nutrition

import (
	"math"

	"bulkup/internal/domain/entity"
)

// Targets is the derived daily nutrition budget. It is recomputed from the
// profile on every read and never persisted.
type Targets struct {
	DailyCalories int `json:"dailyCalories"` // kcal
	Protein       int `json:"protein"`       // g
	Fat           int `json:"fat"`           // g
	Carbs         int `json:"carbs"`         // g
}

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid levels; delivery-layer validation must
// stay in sync with it.
var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

const (
	leanMuscleSurplusKcal = 200
	bulkMuscleSurplusKcal = 500

	leanProteinPerKg = 2.0
	bulkProteinPerKg = 2.5

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarbs   = 4

	// Shares of the calorie budget remaining after protein.
	fatCalorieShare   = 0.30
	carbsCalorieShare = 0.70
)

// BMR computes the basal metabolic rate using the revised Harris-Benedict
// equations. The profile's numeric fields must be positive; the function does
// not guard against nonsensical input.
func BMR(profile *entity.Profile) float64 {
	if profile.Gender == entity.GenderFemale {
		return 447.593 + 9.247*profile.WeightKg + 3.098*profile.HeightCm - 4.330*float64(profile.Age)
	}

	return 88.362 + 13.397*profile.WeightKg + 4.799*profile.HeightCm - 5.677*float64(profile.Age)
}

// ComputeTargets derives the full daily budget from a profile: BMR scaled by
// the activity multiplier, a goal-based calorie surplus, a per-kilogram protein
// target, and a 30/70 fat/carb split of the calories left after protein.
// Intermediate values keep full precision; rounding happens once per derived
// quantity. A pathological profile can produce a negative remainder and with it
// negative fat/carb targets; those are returned as computed, not clamped.
func ComputeTargets(profile *entity.Profile) Targets {
	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		// Absent or unknown level falls back to sedentary.
		multiplier = activityMultipliers[entity.ActivitySedentary]
	}

	dailyCalories := BMR(profile) * multiplier

	var proteinGrams float64
	if profile.BodyGoal == entity.GoalBulkMuscle {
		dailyCalories += bulkMuscleSurplusKcal
		proteinGrams = profile.WeightKg * bulkProteinPerKg
	} else {
		dailyCalories += leanMuscleSurplusKcal
		proteinGrams = profile.WeightKg * leanProteinPerKg
	}

	remaining := dailyCalories - proteinGrams*kcalPerGramProtein

	return Targets{
		DailyCalories: round(dailyCalories),
		Protein:       round(proteinGrams),
		Fat:           round(remaining * fatCalorieShare / kcalPerGramFat),
		Carbs:         round(remaining * carbsCalorieShare / kcalPerGramCarbs),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
