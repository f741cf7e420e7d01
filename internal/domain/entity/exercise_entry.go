package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseEntry records one completed exercise and its estimated energy cost.
// ExerciseTypeID references the static exercise catalog; it may be empty for
// rows imported from the legacy schema, which only carried a duration.
type ExerciseEntry struct {
	ID             uuid.UUID // The unique identifier for this entry.
	UserID         uuid.UUID // The user this entry belongs to.
	Name           string    // Display name of the exercise.
	ExerciseTypeID string    // Catalog id, e.g. "jogging". Empty for legacy rows.
	Amount         float64   // Reps, minutes or kilometers, depending on Unit.
	Unit           string    // Label for Amount, e.g. "reps", "min", "km".
	CaloriesBurned int       // Estimated energy expenditure (kcal).
	CreatedAt      time.Time // When the entry was recorded.
}
