package impl

import (
	"context"
	"log/slog"
	"time"

	"bulkup/config"
	"bulkup/internal/domain/entity"
	domainerrors "bulkup/internal/domain/errors"
	"bulkup/internal/domain/nutrition"
	"bulkup/internal/domain/repository"
	"bulkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	txManager       repository.TransactionManager
	defaultWeightKg float64
	logger          *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	defaultWeight := nutrition.DefaultBodyWeightKg
	if cfg.Nutrition != nil && cfg.Nutrition.DefaultWeightKg > 0 {
		defaultWeight = cfg.Nutrition.DefaultWeightKg
	}

	return &trackingService{
		txManager:       txManager,
		defaultWeightKg: defaultWeight,
		logger:          logger,
	}
}

// AddFoodEntry records a food intake. The quantity-scaled totals are fixed at
// creation time and never recomputed.
func (srv *trackingService) AddFoodEntry(ctx context.Context, userID uuid.UUID, input *usecase.AddFoodEntryInput) (*entity.FoodEntry, error) {
	srv.logger.Info("Adding food entry", "userID", userID, "food", input.Name)

	entry := entity.NewFoodEntry(userID, input.Name, input.Quantity, input.UnitCalories, input.UnitProtein, input.UnitFat, input.UnitCarbs)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FoodEntryRepo().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create food entry")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add food entry")
	}

	return entry, nil
}

// ListFoodEntries returns the user's food entries for the given calendar day,
// newest first.
func (srv *trackingService) ListFoodEntries(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.FoodEntry, error) {
	from, to := dayBounds(day)

	var entries []entity.FoodEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FoodEntryRepo().FindByUserAndRange(ctx, userID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list food entries")
		}
		entries = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food entries")
	}

	return entries, nil
}

// DeleteFoodEntry removes one of the user's food entries by id.
func (srv *trackingService) DeleteFoodEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	srv.logger.Info("Deleting food entry", "userID", userID, "entryID", entryID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FoodEntryRepo().DeleteByID(ctx, userID, entryID); err != nil {
			if errors.Is(err, repository.ErrFoodEntryNotFound) {
				return errors.Wrap(domainerrors.ErrFoodEntryNotFound, "entry not found")
			}

			return errors.Wrap(err, "failed to delete food entry")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete food entry")
	}

	return nil
}

// AddExerciseEntry resolves the exercise type against the static catalog,
// estimates calories burned from the user's body weight (falling back to the
// configured default when no profile exists) and records the entry.
func (srv *trackingService) AddExerciseEntry(ctx context.Context, userID uuid.UUID, input *usecase.AddExerciseEntryInput) (*entity.ExerciseEntry, error) {
	srv.logger.Info("Adding exercise entry", "userID", userID, "exerciseType", input.ExerciseTypeID)

	exerciseType, ok := nutrition.LookupExercise(input.ExerciseTypeID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrExerciseTypeNotFound, "unknown exercise type "+input.ExerciseTypeID)
	}

	var entry *entity.ExerciseEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		weightKg := srv.defaultWeightKg

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user")
			}
		} else if user.Profile != nil && user.Profile.WeightKg > 0 {
			weightKg = user.Profile.WeightKg
		}

		entry = &entity.ExerciseEntry{
			UserID:         userID,
			Name:           exerciseType.Name,
			ExerciseTypeID: exerciseType.ID,
			Amount:         input.Amount,
			Unit:           exerciseType.UnitLabel,
			CaloriesBurned: nutrition.EstimateCalories(exerciseType, input.Amount, weightKg),
		}

		if err := repoFactory.ExerciseEntryRepo().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create exercise entry")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add exercise entry")
	}

	return entry, nil
}

// ListExerciseEntries returns the user's exercise entries for the given
// calendar day, newest first.
func (srv *trackingService) ListExerciseEntries(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.ExerciseEntry, error) {
	from, to := dayBounds(day)

	var entries []entity.ExerciseEntry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ExerciseEntryRepo().FindByUserAndRange(ctx, userID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list exercise entries")
		}
		entries = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exercise entries")
	}

	return entries, nil
}

// DeleteExerciseEntry removes one of the user's exercise entries by id.
func (srv *trackingService) DeleteExerciseEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	srv.logger.Info("Deleting exercise entry", "userID", userID, "entryID", entryID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ExerciseEntryRepo().DeleteByID(ctx, userID, entryID); err != nil {
			if errors.Is(err, repository.ErrExerciseEntryNotFound) {
				return errors.Wrap(domainerrors.ErrExerciseEntryNotFound, "entry not found")
			}

			return errors.Wrap(err, "failed to delete exercise entry")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete exercise entry")
	}

	return nil
}

// DailyProgress loads one day's entries plus the profile-derived targets and
// folds them into a progress report. The aggregation itself is a pure
// function; this method only assembles its inputs inside one transaction so
// the report reflects a consistent snapshot.
func (srv *trackingService) DailyProgress(ctx context.Context, userID uuid.UUID, day time.Time) (*nutrition.ProgressReport, error) {
	from, to := dayBounds(day)

	var report nutrition.ProgressReport

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var targets *nutrition.Targets

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user")
			}
		} else if user.Profile != nil {
			computed := nutrition.ComputeTargets(user.Profile)
			targets = &computed
		}

		foods, err := repoFactory.FoodEntryRepo().FindByUserAndRange(ctx, userID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list food entries")
		}

		exercises, err := repoFactory.ExerciseEntryRepo().FindByUserAndRange(ctx, userID, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list exercise entries")
		}

		report = nutrition.AggregateProgress(targets, foods, exercises)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily progress")
	}

	return &report, nil
}

// dayBounds returns the [midnight, next midnight) window containing t in t's
// own location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())

	return start, start.AddDate(0, 0, 1)
}
