package postgres

import (
	"context"
	"time"

	"bulkup/internal/domain/entity"
	domainerrors "bulkup/internal/domain/errors"
	"bulkup/internal/domain/repository"
	"bulkup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// exerciseEntryRepository implements the repository.ExerciseEntryRepository interface.
type exerciseEntryRepository struct {
	db *gorm.DB
}

// NewExerciseEntryRepository is the constructor for exerciseEntryRepository.
func NewExerciseEntryRepository(db *gorm.DB) repository.ExerciseEntryRepository {
	return &exerciseEntryRepository{
		db: db,
	}
}

// Create persists a new exercise entry.
func (repo *exerciseEntryRepository) Create(ctx context.Context, entry *entity.ExerciseEntry) error {
	entryM := fromExerciseEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("entry references a missing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required exercise entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create exercise entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByUserAndRange retrieves the user's entries created within [from, to), newest first.
func (repo *exerciseEntryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ExerciseEntry, error) {
	var entryModels []*model.ExerciseEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find exercise entries")
	}

	entries := make([]entity.ExerciseEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, *toExerciseEntryDomain(entryM))
	}

	return entries, nil
}

// DeleteByID removes an entry by id, scoped to the owning user.
func (repo *exerciseEntryRepository) DeleteByID(ctx context.Context, userID, entryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.ExerciseEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete exercise entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExerciseEntryNotFound
	}

	return nil
}

// toExerciseEntryDomain converts a GORM ExerciseEntryModel to a domain ExerciseEntry entity.
// Legacy rows predate the amount/unit columns and carry only duration_min;
// they are normalized here so callers always see the amount/unit shape.
func toExerciseEntryDomain(data *model.ExerciseEntryModel) *entity.ExerciseEntry {
	if data == nil {
		return nil
	}

	amount := data.Amount
	unit := data.Unit
	if amount == 0 && data.DurationMin != nil {
		amount = float64(*data.DurationMin)
		unit = "min"
	}

	return &entity.ExerciseEntry{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		ExerciseTypeID: data.ExerciseTypeID,
		Amount:         amount,
		Unit:           unit,
		CaloriesBurned: data.CaloriesBurned,
		CreatedAt:      data.CreatedAt,
	}
}

// fromExerciseEntryDomain converts a domain ExerciseEntry entity to a GORM ExerciseEntryModel.
// New rows never populate the legacy duration_min column.
func fromExerciseEntryDomain(data *entity.ExerciseEntry) *model.ExerciseEntryModel {
	if data == nil {
		return nil
	}

	return &model.ExerciseEntryModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		ExerciseTypeID: data.ExerciseTypeID,
		Amount:         data.Amount,
		Unit:           data.Unit,
		CaloriesBurned: data.CaloriesBurned,
		CreatedAt:      data.CreatedAt,
	}
}
