package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCaloriesByID_MinutesFormula(t *testing.T) {
	// jogging: MET 7.0, 30 minutes at 70 kg -> 7.0 * 70 * 0.5 = 245
	assert.Equal(t, 245, EstimateCaloriesByID("jogging", 30, 70))

	// walking: MET 3.5, 60 minutes at 80 kg -> 3.5 * 80 * 1 = 280
	assert.Equal(t, 280, EstimateCaloriesByID("walking", 60, 80))
}

func TestEstimateCaloriesByID_RepsScaleWithWeight(t *testing.T) {
	// push_ups: 0.5 kcal/rep at the 60 kg reference weight
	assert.Equal(t, 10, EstimateCaloriesByID("push_ups", 20, 60))
	assert.Equal(t, 15, EstimateCaloriesByID("push_ups", 20, 90))
}

func TestEstimateCaloriesByID_DistanceImpliesDuration(t *testing.T) {
	// running_distance: 5 km at 10 km/h -> 0.5 h; 9.8 * 70 * 0.5 = 343
	assert.Equal(t, 343, EstimateCaloriesByID("running_distance", 5, 70))

	// walking_distance: 2 km at 4 km/h -> 0.5 h; 3.5 * 70 * 0.5 = 122.5 -> 123
	assert.Equal(t, 123, EstimateCaloriesByID("walking_distance", 2, 70))
}

func TestEstimateCaloriesByID_DefaultWeight(t *testing.T) {
	// Missing weight substitutes 65 kg: 7.0 * 65 * 0.5 = 227.5 -> 228
	assert.Equal(t, 228, EstimateCaloriesByID("jogging", 30, 0))
	assert.Equal(t, 228, EstimateCaloriesByID("jogging", 30, -1))
}

func TestEstimateCaloriesByID_UnknownOrInvalidInput(t *testing.T) {
	assert.Equal(t, 0, EstimateCaloriesByID("moonwalking", 30, 70))
	assert.Equal(t, 0, EstimateCaloriesByID("jogging", 0, 70))
	assert.Equal(t, 0, EstimateCaloriesByID("jogging", -5, 70))
}

func TestEstimateCalories_RepsFallbackWithoutPerUnitConstant(t *testing.T) {
	// No calibrated per-rep constant: fall back to the minutes formula with
	// one rep treated as one minute.
	ex := ExerciseType{ID: "situps", Unit: UnitReps, MET: 6.0}

	// 6.0 * 60 * (30/60) = 180
	assert.Equal(t, 180, EstimateCalories(ex, 30, 60))
}

func TestEstimateCalories_UnrecognizedUnit(t *testing.T) {
	ex := ExerciseType{ID: "mystery", Unit: ExerciseUnit("laps"), MET: 5.0}

	assert.Equal(t, 0, EstimateCalories(ex, 10, 70))
}

func TestLookupExercise(t *testing.T) {
	ex, ok := LookupExercise("jogging")
	require.True(t, ok)
	assert.Equal(t, "Jogging", ex.Name)
	assert.Equal(t, UnitMinutes, ex.Unit)
	assert.InDelta(t, 7.0, ex.MET, 0.0001)

	_, ok = LookupExercise("nope")
	assert.False(t, ok)
}

func TestExercisesByCategory(t *testing.T) {
	strength := ExercisesByCategory("strength")
	require.NotEmpty(t, strength)
	for _, ex := range strength {
		assert.Equal(t, "strength", ex.Category)
	}

	assert.Empty(t, ExercisesByCategory("yoga"))
}
