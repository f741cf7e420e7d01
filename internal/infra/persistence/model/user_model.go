package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
// It holds the physiological attributes the nutrition targets are derived from.
type ProfileModel struct {
	UserID        uuid.UUID `gorm:"primaryKey"`
	Age           int       `gorm:"not null"`
	Gender        string    `gorm:"type:varchar(10);not null"`
	HeightCm      float64   `gorm:"type:decimal(5,2);not null"`
	WeightKg      float64   `gorm:"type:decimal(5,2);not null"`
	ActivityLevel string    `gorm:"type:varchar(20);not null"`
	BodyGoal      string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}
