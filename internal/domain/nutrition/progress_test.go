package nutrition

import (
	"testing"

	"bulkup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food(calories int, protein, fat, carbs float64) entity.FoodEntry {
	return entity.FoodEntry{Calories: calories, Protein: protein, Fat: fat, Carbs: carbs}
}

func exercise(burned int) entity.ExerciseEntry {
	return entity.ExerciseEntry{CaloriesBurned: burned}
}

func TestAggregateProgress_EmptyState(t *testing.T) {
	report := AggregateProgress(nil, nil, nil)

	for _, p := range []NutrientProgress{report.Calories, report.Protein, report.Fat, report.Carbs} {
		assert.Zero(t, p.Consumed)
		assert.Zero(t, p.Target)
		assert.Zero(t, p.AdjustedTarget)
		assert.Zero(t, p.Percent)
		assert.Empty(t, p.Status)
		assert.Empty(t, p.Message)
	}
	assert.Zero(t, report.BurnedCalories)
}

func TestAggregateProgress_NilTargetsStillSumsTotals(t *testing.T) {
	foods := []entity.FoodEntry{food(500, 30, 10, 50), food(300, 20, 5, 40)}
	exercises := []entity.ExerciseEntry{exercise(200)}

	report := AggregateProgress(nil, foods, exercises)

	assert.InDelta(t, 800, report.Calories.Consumed, 0.0001)
	assert.InDelta(t, 50, report.Protein.Consumed, 0.0001)
	assert.Equal(t, 200, report.BurnedCalories)
	assert.Zero(t, report.Calories.Percent)
	assert.Empty(t, report.Calories.Status)
}

func TestAggregateProgress_Totals(t *testing.T) {
	targets := &Targets{DailyCalories: 2000, Protein: 140, Fat: 60, Carbs: 250}
	foods := []entity.FoodEntry{
		food(600, 40, 20, 60),
		food(400, 30, 10, 50),
	}
	exercises := []entity.ExerciseEntry{exercise(150), exercise(100)}

	report := AggregateProgress(targets, foods, exercises)

	assert.InDelta(t, 1000, report.Calories.Consumed, 0.0001)
	assert.InDelta(t, 70, report.Protein.Consumed, 0.0001)
	assert.InDelta(t, 30, report.Fat.Consumed, 0.0001)
	assert.InDelta(t, 110, report.Carbs.Consumed, 0.0001)
	assert.Equal(t, 250, report.BurnedCalories)
}

func TestAggregateProgress_ExerciseAdjustsCalorieTargetOnly(t *testing.T) {
	targets := &Targets{DailyCalories: 2000, Protein: 100, Fat: 60, Carbs: 250}
	foods := []entity.FoodEntry{food(1100, 50, 30, 100)}
	exercises := []entity.ExerciseEntry{exercise(200)}

	report := AggregateProgress(targets, foods, exercises)

	assert.Equal(t, 2200, report.Calories.AdjustedTarget)
	assert.InDelta(t, 50, report.Calories.Percent, 0.0001) // 1100 / 2200
	assert.Equal(t, 100, report.Protein.AdjustedTarget)    // no adjustment
	assert.InDelta(t, 50, report.Protein.Percent, 0.0001)
}

func TestAggregateProgress_Idempotent(t *testing.T) {
	targets := &Targets{DailyCalories: 2000, Protein: 140, Fat: 60, Carbs: 250}
	foods := []entity.FoodEntry{food(600, 40, 20, 60)}
	exercises := []entity.ExerciseEntry{exercise(150)}

	first := AggregateProgress(targets, foods, exercises)
	second := AggregateProgress(targets, foods, exercises)

	assert.Equal(t, first, second)
}

func TestAggregateProgress_CeilingBands(t *testing.T) {
	targets := &Targets{DailyCalories: 1000, Protein: 100, Fat: 100, Carbs: 100}

	tests := []struct {
		name       string
		calories   int
		wantStatus NutrientStatus
	}{
		{name: "plenty of room below 50%", calories: 499, wantStatus: StatusPlentyOfRoom},
		{name: "on track at 50%", calories: 500, wantStatus: StatusOnTrack},
		{name: "near limit at 80%", calories: 800, wantStatus: StatusNearLimit},
		{name: "over at exactly 100%", calories: 1000, wantStatus: StatusOver},
		{name: "over above 100%", calories: 1200, wantStatus: StatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateProgress(targets, []entity.FoodEntry{food(tt.calories, 0, 0, 0)}, nil)

			assert.Equal(t, tt.wantStatus, report.Calories.Status)
		})
	}
}

func TestAggregateProgress_FloorBands(t *testing.T) {
	targets := &Targets{DailyCalories: 2000, Protein: 100, Fat: 60, Carbs: 250}

	tests := []struct {
		name       string
		protein    float64
		wantStatus NutrientStatus
	}{
		{name: "deficient below 50%", protein: 49.9, wantStatus: StatusDeficient},
		{name: "behind at 50%", protein: 50, wantStatus: StatusBehind},
		{name: "almost there at 80%", protein: 80, wantStatus: StatusAlmostThere},
		{name: "goal met at exactly 100%", protein: 100, wantStatus: StatusGoalMet},
		{name: "goal met above 100%", protein: 120, wantStatus: StatusGoalMet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateProgress(targets, []entity.FoodEntry{food(0, tt.protein, 0, 0)}, nil)

			assert.Equal(t, tt.wantStatus, report.Protein.Status)
		})
	}
}

func TestAggregateProgress_Messages(t *testing.T) {
	targets := &Targets{DailyCalories: 2000, Protein: 100, Fat: 60, Carbs: 250}

	under := AggregateProgress(targets, []entity.FoodEntry{food(1500, 80, 70, 0)}, nil)
	assert.Equal(t, "500 kcal remaining", under.Calories.Message)
	assert.Equal(t, "20.0 g to go", under.Protein.Message)
	assert.Equal(t, "10.0 g over target", under.Fat.Message)

	exact := AggregateProgress(targets, []entity.FoodEntry{food(2000, 100, 0, 0)}, nil)
	assert.Equal(t, "target met", exact.Calories.Message)
	assert.Equal(t, "target met", exact.Protein.Message)

	surplus := AggregateProgress(targets, []entity.FoodEntry{food(0, 112.5, 0, 0)}, nil)
	assert.Equal(t, "target met, 12.5 g surplus", surplus.Protein.Message)
}

func TestClassify_ExhaustivePerPolarity(t *testing.T) {
	ceiling := map[float64]NutrientStatus{
		0: StatusPlentyOfRoom, 49.99: StatusPlentyOfRoom,
		50: StatusOnTrack, 79.99: StatusOnTrack,
		80: StatusNearLimit, 99.99: StatusNearLimit,
		100: StatusOver, 150: StatusOver,
	}
	for percent, want := range ceiling {
		require.Equal(t, want, Classify(PolarityCeiling, percent), "ceiling %.2f%%", percent)
	}

	floor := map[float64]NutrientStatus{
		0: StatusDeficient, 49.99: StatusDeficient,
		50: StatusBehind, 79.99: StatusBehind,
		80: StatusAlmostThere, 99.99: StatusAlmostThere,
		100: StatusGoalMet, 150: StatusGoalMet,
	}
	for percent, want := range floor {
		require.Equal(t, want, Classify(PolarityFloor, percent), "floor %.2f%%", percent)
	}
}
