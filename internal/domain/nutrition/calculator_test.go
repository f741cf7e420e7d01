package nutrition

import (
	"testing"

	"bulkup/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func baseProfile() *entity.Profile {
	return &entity.Profile{
		Age:           30,
		Gender:        entity.GenderMale,
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: entity.ActivitySedentary,
		BodyGoal:      entity.GoalLeanMuscle,
	}
}

func TestBMR_HarrisBenedict(t *testing.T) {
	male := baseProfile()
	// 88.362 + 13.397*70 + 4.799*175 - 5.677*30 = 1695.667
	assert.InDelta(t, 1695.667, BMR(male), 0.001)

	female := baseProfile()
	female.Gender = entity.GenderFemale
	// 447.593 + 9.247*70 + 3.098*175 - 4.330*30 = 1507.133
	assert.InDelta(t, 1507.133, BMR(female), 0.001)
}

func TestComputeTargets_GoalAdjustment(t *testing.T) {
	tests := []struct {
		name         string
		goal         entity.BodyGoal
		wantCalories int
		wantProtein  int
	}{
		{name: "lean muscle", goal: entity.GoalLeanMuscle, wantCalories: 2235, wantProtein: 140},
		{name: "bulk muscle", goal: entity.GoalBulkMuscle, wantCalories: 2535, wantProtein: 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			profile.BodyGoal = tt.goal

			targets := ComputeTargets(profile)

			assert.Equal(t, tt.wantCalories, targets.DailyCalories)
			assert.Equal(t, tt.wantProtein, targets.Protein)
		})
	}
}

func TestComputeTargets_ActivityMultipliers(t *testing.T) {
	tests := []struct {
		level      entity.ActivityLevel
		multiplier float64
	}{
		{entity.ActivitySedentary, 1.2},
		{entity.ActivityLight, 1.375},
		{entity.ActivityModerate, 1.55},
		{entity.ActivityActive, 1.725},
		{entity.ActivityVeryActive, 1.9},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			profile := baseProfile()
			profile.ActivityLevel = tt.level

			targets := ComputeTargets(profile)

			want := round(BMR(profile)*tt.multiplier + leanMuscleSurplusKcal)
			assert.Equal(t, want, targets.DailyCalories)
		})
	}
}

func TestComputeTargets_UnknownActivityFallsBackToSedentary(t *testing.T) {
	profile := baseProfile()
	profile.ActivityLevel = ""

	withDefault := ComputeTargets(profile)

	profile.ActivityLevel = entity.ActivitySedentary
	explicit := ComputeTargets(profile)

	assert.Equal(t, explicit, withDefault)
}

func TestComputeTargets_MacroSplitEnergyBalance(t *testing.T) {
	// The independently rounded macro targets must re-sum to the calorie
	// target within rounding error of each component.
	profiles := []*entity.Profile{
		baseProfile(),
		{Age: 25, Gender: entity.GenderFemale, HeightCm: 162, WeightKg: 55, ActivityLevel: entity.ActivityModerate, BodyGoal: entity.GoalLeanMuscle},
		{Age: 45, Gender: entity.GenderMale, HeightCm: 182, WeightKg: 95, ActivityLevel: entity.ActivityVeryActive, BodyGoal: entity.GoalBulkMuscle},
	}

	for _, profile := range profiles {
		targets := ComputeTargets(profile)

		macroKcal := targets.Protein*kcalPerGramProtein +
			targets.Fat*kcalPerGramFat +
			targets.Carbs*kcalPerGramCarbs
		assert.InDelta(t, targets.DailyCalories, macroKcal, 7)
	}
}

func TestComputeTargets_NegativeRemainderNotClamped(t *testing.T) {
	// A very low body weight with a high protein multiplier can push the
	// post-protein remainder negative. The split reports it as computed.
	profile := &entity.Profile{
		Age:           80,
		Gender:        entity.GenderFemale,
		HeightCm:      100,
		WeightKg:      2,
		ActivityLevel: entity.ActivitySedentary,
		BodyGoal:      entity.GoalBulkMuscle,
	}

	targets := ComputeTargets(profile)

	assert.Less(t, targets.DailyCalories, targets.Protein*kcalPerGramProtein)
	assert.Less(t, targets.Fat, 0)
	assert.Less(t, targets.Carbs, 0)
}
