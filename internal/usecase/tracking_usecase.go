package usecase

import (
	"context"
	"time"

	"bulkup/internal/domain/entity"
	"bulkup/internal/domain/nutrition"

	"github.com/google/uuid"
)

// TrackingUsecase defines the interface for recording food intake and exercise
// and reading the aggregated daily progress.
type TrackingUsecase interface {
	AddFoodEntry(ctx context.Context, userID uuid.UUID, input *AddFoodEntryInput) (*entity.FoodEntry, error)
	ListFoodEntries(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, userID, entryID uuid.UUID) error

	AddExerciseEntry(ctx context.Context, userID uuid.UUID, input *AddExerciseEntryInput) (*entity.ExerciseEntry, error)
	ListExerciseEntries(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.ExerciseEntry, error)
	DeleteExerciseEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// DailyProgress aggregates the day's entries against the user's targets.
	// A user without a configured profile gets a report with zeroed progress.
	DailyProgress(ctx context.Context, userID uuid.UUID, day time.Time) (*nutrition.ProgressReport, error)
}

// --- Input DTOs ---

// AddFoodEntryInput defines the data required to record a food intake.
// Totals are derived from the per-unit values at creation time.
type AddFoodEntryInput struct {
	Name         string  `json:"food" validate:"required,max=255"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	UnitCalories int     `json:"unitCalories" validate:"required,gte=0"`
	UnitProtein  float64 `json:"unitProtein" validate:"gte=0"`
	UnitFat      float64 `json:"unitFat" validate:"gte=0"`
	UnitCarbs    float64 `json:"unitCarbs" validate:"gte=0"`
}

// AddExerciseEntryInput defines the data required to record an exercise.
// The exercise name, unit label and calorie estimate are resolved from the
// static catalog and the user's body weight; clients only choose a type and
// an amount.
type AddExerciseEntryInput struct {
	ExerciseTypeID string  `json:"exerciseType" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
}
