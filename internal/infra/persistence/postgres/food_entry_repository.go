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

// foodEntryRepository implements the repository.FoodEntryRepository interface.
type foodEntryRepository struct {
	db *gorm.DB
}

// NewFoodEntryRepository is the constructor for foodEntryRepository.
func NewFoodEntryRepository(db *gorm.DB) repository.FoodEntryRepository {
	return &foodEntryRepository{
		db: db,
	}
}

// Create persists a new food entry.
func (repo *foodEntryRepository) Create(ctx context.Context, entry *entity.FoodEntry) error {
	entryM := fromFoodEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("entry references a missing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByUserAndRange retrieves the user's entries created within [from, to), newest first.
func (repo *foodEntryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.FoodEntry, error) {
	var entryModels []*model.FoodEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food entries")
	}

	entries := make([]entity.FoodEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, *toFoodEntryDomain(entryM))
	}

	return entries, nil
}

// DeleteByID removes an entry by id, scoped to the owning user.
func (repo *foodEntryRepository) DeleteByID(ctx context.Context, userID, entryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.FoodEntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodEntryNotFound
	}

	return nil
}

// toFoodEntryDomain converts a GORM FoodEntryModel to a domain FoodEntry entity.
func toFoodEntryDomain(data *model.FoodEntryModel) *entity.FoodEntry {
	if data == nil {
		return nil
	}

	return &entity.FoodEntry{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Quantity:     data.Quantity,
		UnitCalories: data.UnitCalories,
		UnitProtein:  data.UnitProtein,
		UnitFat:      data.UnitFat,
		UnitCarbs:    data.UnitCarbs,
		Calories:     data.Calories,
		Protein:      data.Protein,
		Fat:          data.Fat,
		Carbs:        data.Carbs,
		CreatedAt:    data.CreatedAt,
	}
}

// fromFoodEntryDomain converts a domain FoodEntry entity to a GORM FoodEntryModel.
func fromFoodEntryDomain(data *entity.FoodEntry) *model.FoodEntryModel {
	if data == nil {
		return nil
	}

	return &model.FoodEntryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Quantity:     data.Quantity,
		UnitCalories: data.UnitCalories,
		UnitProtein:  data.UnitProtein,
		UnitFat:      data.UnitFat,
		UnitCarbs:    data.UnitCarbs,
		Calories:     data.Calories,
		Protein:      data.Protein,
		Fat:          data.Fat,
		Carbs:        data.Carbs,
		CreatedAt:    data.CreatedAt,
	}
}
