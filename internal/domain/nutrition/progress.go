package nutrition

import (
	"fmt"
	"math"

	"bulkup/internal/domain/entity"
)

// Polarity is the comparison direction for a tracked nutrient. Ceiling
// nutrients (calories, fat, carbs) should stay at or below their target;
// the floor nutrient (protein) should reach it.
type Polarity int

const (
	PolarityCeiling Polarity = iota
	PolarityFloor
)

// NutrientStatus classifies progress against a target into a small ordered
// band set. Ceiling and floor nutrients use separate vocabularies because the
// same percentage means opposite things for them.
type NutrientStatus string

const (
	// Ceiling bands, less-is-better up to the target.
	StatusOver         NutrientStatus = "over"
	StatusNearLimit    NutrientStatus = "near_limit"
	StatusOnTrack      NutrientStatus = "on_track"
	StatusPlentyOfRoom NutrientStatus = "plenty_of_room"

	// Floor bands, more-is-better up to the target.
	StatusGoalMet     NutrientStatus = "goal_met"
	StatusAlmostThere NutrientStatus = "almost_there"
	StatusBehind      NutrientStatus = "behind"
	StatusDeficient   NutrientStatus = "deficient"
)

// NutrientProgress is the per-nutrient slice of a ProgressReport.
type NutrientProgress struct {
	Consumed       float64        `json:"consumed"`
	Target         int            `json:"target"`
	AdjustedTarget int            `json:"adjustedTarget"`
	Percent        float64        `json:"percent"`
	Status         NutrientStatus `json:"status,omitempty"`
	Message        string         `json:"message,omitempty"`
}

// ProgressReport is the aggregated view of one day's intake and expenditure
// against the computed targets.
type ProgressReport struct {
	Calories       NutrientProgress `json:"calories"`
	Protein        NutrientProgress `json:"protein"`
	Fat            NutrientProgress `json:"fat"`
	Carbs          NutrientProgress `json:"carbs"`
	BurnedCalories int              `json:"burnedCalories"`
}

// AggregateProgress folds food and exercise entries into running totals and
// classifies each nutrient against the targets. Exercise earns back calorie
// headroom: the calorie target is adjusted upward by total burned calories
// before the percentage is computed. Macro targets get no such adjustment.
//
// A nil targets value (profile not yet configured) produces a report that
// still carries the consumed and burned totals but leaves every percentage at
// zero and every status empty. The computation is a pure function of its
// inputs; entry order does not affect the result.
func AggregateProgress(targets *Targets, foods []entity.FoodEntry, exercises []entity.ExerciseEntry) ProgressReport {
	var consumedCalories int
	var consumedProtein, consumedFat, consumedCarbs float64
	for _, f := range foods {
		consumedCalories += f.Calories
		consumedProtein += f.Protein
		consumedFat += f.Fat
		consumedCarbs += f.Carbs
	}

	var burned int
	for _, e := range exercises {
		burned += e.CaloriesBurned
	}

	var calorieTarget, proteinTarget, fatTarget, carbsTarget int
	if targets != nil {
		calorieTarget = targets.DailyCalories
		proteinTarget = targets.Protein
		fatTarget = targets.Fat
		carbsTarget = targets.Carbs
	}

	adjustedCalories := calorieTarget
	if calorieTarget > 0 {
		adjustedCalories = calorieTarget + burned
	}

	return ProgressReport{
		Calories:       nutrientProgress(float64(consumedCalories), calorieTarget, adjustedCalories, PolarityCeiling, unitKcal),
		Protein:        nutrientProgress(consumedProtein, proteinTarget, proteinTarget, PolarityFloor, unitGram),
		Fat:            nutrientProgress(consumedFat, fatTarget, fatTarget, PolarityCeiling, unitGram),
		Carbs:          nutrientProgress(consumedCarbs, carbsTarget, carbsTarget, PolarityCeiling, unitGram),
		BurnedCalories: burned,
	}
}

const (
	unitKcal = "kcal"
	unitGram = "g"
)

// nutrientProgress computes the percentage against the adjusted target and
// attaches the band classification and human-readable message. A non-positive
// target disables classification entirely.
func nutrientProgress(consumed float64, target, adjustedTarget int, polarity Polarity, unit string) NutrientProgress {
	progress := NutrientProgress{
		Consumed:       consumed,
		Target:         target,
		AdjustedTarget: adjustedTarget,
	}

	if adjustedTarget <= 0 {
		return progress
	}

	progress.Percent = consumed / float64(adjustedTarget) * 100
	progress.Status = Classify(polarity, progress.Percent)
	progress.Message = remainingMessage(polarity, float64(adjustedTarget)-consumed, unit)

	return progress
}

// Classify maps a progress percentage onto a status band. The 100% boundary
// belongs to the top band (over / goal_met), not the adjacent lower one.
func Classify(polarity Polarity, percent float64) NutrientStatus {
	switch {
	case percent >= 100:
		if polarity == PolarityFloor {
			return StatusGoalMet
		}

		return StatusOver
	case percent >= 80:
		if polarity == PolarityFloor {
			return StatusAlmostThere
		}

		return StatusNearLimit
	case percent >= 50:
		if polarity == PolarityFloor {
			return StatusBehind
		}

		return StatusOnTrack
	default:
		if polarity == PolarityFloor {
			return StatusDeficient
		}

		return StatusPlentyOfRoom
	}
}

// remainingMessage renders the remaining/over amount with framing that matches
// the nutrient's polarity.
func remainingMessage(polarity Polarity, remaining float64, unit string) string {
	switch {
	case remaining > 0:
		if polarity == PolarityFloor {
			return fmt.Sprintf("%s to go", formatAmount(remaining, unit))
		}

		return fmt.Sprintf("%s remaining", formatAmount(remaining, unit))
	case remaining == 0:
		return "target met"
	default:
		surplus := formatAmount(-remaining, unit)
		if polarity == PolarityFloor {
			return fmt.Sprintf("target met, %s surplus", surplus)
		}

		return fmt.Sprintf("%s over target", surplus)
	}
}

func formatAmount(v float64, unit string) string {
	if unit == unitKcal {
		return fmt.Sprintf("%d %s", int(math.Round(v)), unit)
	}

	return fmt.Sprintf("%.1f %s", v, unit)
}
