package usecase

import (
	"context"

	"bulkup/internal/domain/entity"
	"bulkup/internal/domain/nutrition"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Daily targets are derived data: they are recomputed from the profile on
// every read and never stored.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*ProfileOutput, error)
	GetTargets(ctx context.Context, userID uuid.UUID) (*nutrition.Targets, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to create or replace the
// physiological profile. The numeric guards here are the caller-side
// validation the pure calculator trusts.
type UpdateProfileInput struct {
	Age           int     `json:"age" validate:"required,gt=0,lte=130"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	HeightCm      float64 `json:"height" validate:"required,gt=0"`
	WeightKg      float64 `json:"weight" validate:"required,gt=0"`
	ActivityLevel string  `json:"activityLevel" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	BodyGoal      string  `json:"bodyGoal" validate:"required,oneof=lean_muscle bulk_muscle"`
}

// --- Output DTOs ---

// ProfileOutput couples the stored profile with the targets derived from it.
// Both are nil when the user has not configured a profile yet.
type ProfileOutput struct {
	Profile *entity.Profile    `json:"profile"`
	Targets *nutrition.Targets `json:"targets"`
}
