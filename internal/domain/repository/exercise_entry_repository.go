package repository

import (
	"context"
	"errors"
	"time"

	"bulkup/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExerciseEntryNotFound is returned when an exercise entry does not exist
// or does not belong to the requesting user.
var ErrExerciseEntryNotFound = errors.New("exercise entry not found")

// ExerciseEntryRepository defines the operations for exercise-entry
// persistence. Entries are append-only, like food entries. Implementations
// must normalize legacy duration-only rows into the amount/unit shape before
// returning them, so callers always see a uniform contract.
type ExerciseEntryRepository interface {
	// Create persists a new exercise entry.
	Create(ctx context.Context, entry *entity.ExerciseEntry) error

	// FindByUserAndRange retrieves the user's entries created within
	// [from, to), newest first.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.ExerciseEntry, error)

	// DeleteByID removes an entry by id, scoped to the owning user.
	DeleteByID(ctx context.Context, userID, entryID uuid.UUID) error
}
