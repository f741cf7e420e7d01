package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodEntry records one food intake. Per-unit nutrient values are kept next to
// the quantity-scaled totals so an entry stays self-describing after the fact.
// Totals are computed once at creation time; quantity is not mutable afterwards.
type FoodEntry struct {
	ID           uuid.UUID // The unique identifier for this entry.
	UserID       uuid.UUID // The user this entry belongs to.
	Name         string    // Free-form food name as entered by the user.
	Quantity     int       // Number of units consumed.
	UnitCalories int       // Calories per unit (kcal).
	UnitProtein  float64   // Protein per unit (g).
	UnitFat      float64   // Fat per unit (g).
	UnitCarbs    float64   // Carbohydrate per unit (g).
	Calories     int       // Quantity-scaled total calories (kcal).
	Protein      float64   // Quantity-scaled total protein (g).
	Fat          float64   // Quantity-scaled total fat (g).
	Carbs        float64   // Quantity-scaled total carbohydrate (g).
	CreatedAt    time.Time // When the entry was recorded.
}

// NewFoodEntry builds a FoodEntry for the given user, scaling the per-unit
// values by quantity. The scaled totals are fixed here and never recomputed.
func NewFoodEntry(userID uuid.UUID, name string, quantity int, unitCalories int, unitProtein, unitFat, unitCarbs float64) *FoodEntry {
	return &FoodEntry{
		UserID:       userID,
		Name:         name,
		Quantity:     quantity,
		UnitCalories: unitCalories,
		UnitProtein:  unitProtein,
		UnitFat:      unitFat,
		UnitCarbs:    unitCarbs,
		Calories:     unitCalories * quantity,
		Protein:      unitProtein * float64(quantity),
		Fat:          unitFat * float64(quantity),
		Carbs:        unitCarbs * float64(quantity),
	}
}
