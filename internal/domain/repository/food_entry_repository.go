package repository

import (
	"context"
	"errors"
	"time"

	"bulkup/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodEntryNotFound is returned when a food entry does not exist or does
// not belong to the requesting user.
var ErrFoodEntryNotFound = errors.New("food entry not found")

// FoodEntryRepository defines the operations for food-entry persistence.
// Entries are append-only: they are created, listed and deleted, never updated.
type FoodEntryRepository interface {
	// Create persists a new food entry.
	Create(ctx context.Context, entry *entity.FoodEntry) error

	// FindByUserAndRange retrieves the user's entries created within
	// [from, to), newest first.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.FoodEntry, error)

	// DeleteByID removes an entry by id, scoped to the owning user.
	DeleteByID(ctx context.Context, userID, entryID uuid.UUID) error
}
