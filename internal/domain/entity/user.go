// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It carries identity and credential data; the physiological profile used for
// target computation lives in the attached Profile.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt-hashed login password.
	Profile      *Profile  // The physiological profile. Nil until the user configures it.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
