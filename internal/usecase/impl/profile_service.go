package impl

import (
	"context"
	"log/slog"
	"time"

	"bulkup/internal/domain/entity"
	domainerrors "bulkup/internal/domain/errors"
	"bulkup/internal/domain/nutrition"
	"bulkup/internal/domain/repository"
	"bulkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the stored profile together with the targets derived
// from it. Both output fields are nil when no profile has been configured.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.logger.Debug("Getting profile", "userID", userID)

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	output := &usecase.ProfileOutput{}
	if user.Profile != nil {
		targets := nutrition.ComputeTargets(user.Profile)
		output.Profile = user.Profile
		output.Targets = &targets
	}

	return output, nil
}

// UpdateProfile creates or replaces the physiological profile and returns it
// with the recomputed targets.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	srv.logger.Info("Updating profile", "userID", userID)

	activity := entity.ActivityLevel(input.ActivityLevel)
	if activity == "" {
		activity = entity.ActivitySedentary
	}

	profile := &entity.Profile{
		UserID:        userID,
		Age:           input.Age,
		Gender:        entity.Gender(input.Gender),
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: activity,
		BodyGoal:      entity.BodyGoal(input.BodyGoal),
		UpdatedAt:     time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.Profile = profile
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	targets := nutrition.ComputeTargets(profile)

	return &usecase.ProfileOutput{
		Profile: profile,
		Targets: &targets,
	}, nil
}

// GetTargets recomputes the daily targets from the stored profile. Unlike
// GetProfile, a missing profile is an error here: the caller asked for
// numbers that cannot be derived yet.
func (srv *profileService) GetTargets(ctx context.Context, userID uuid.UUID) (*nutrition.Targets, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get targets")
	}

	if user.Profile == nil {
		return nil, errors.Wrap(domainerrors.ErrProfileNotConfigured, "no profile to derive targets from")
	}

	targets := nutrition.ComputeTargets(user.Profile)

	return &targets, nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
