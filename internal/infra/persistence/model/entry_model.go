package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodEntryModel mirrors the 'food_entries' table. Per-unit values and the
// quantity-scaled totals are both stored, so totals never have to be
// recomputed after creation.
type FoodEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Quantity     int       `gorm:"not null;default:1"`
	UnitCalories int       `gorm:"not null"`
	UnitProtein  float64   `gorm:"type:decimal(6,2);not null;default:0"`
	UnitFat      float64   `gorm:"type:decimal(6,2);not null;default:0"`
	UnitCarbs    float64   `gorm:"type:decimal(6,2);not null;default:0"`
	Calories     int       `gorm:"not null"`
	Protein      float64   `gorm:"type:decimal(7,2);not null;default:0"`
	Fat          float64   `gorm:"type:decimal(7,2);not null;default:0"`
	Carbs        float64   `gorm:"type:decimal(7,2);not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (FoodEntryModel) TableName() string {
	return "food_entries"
}

// ExerciseEntryModel mirrors the 'exercise_entries' table.
// DurationMin is a legacy column: rows written before amount/unit existed
// carry only a duration in minutes. The repository normalizes such rows on
// read, new rows never set it.
type ExerciseEntryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ExerciseTypeID string    `gorm:"type:varchar(50)"`
	Amount         float64   `gorm:"type:decimal(8,2)"`
	Unit           string    `gorm:"type:varchar(10)"`
	CaloriesBurned int       `gorm:"not null"`
	DurationMin    *int
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ExerciseEntryModel) TableName() string {
	return "exercise_entries"
}
