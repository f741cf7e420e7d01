package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender selects which Harris-Benedict constants apply when deriving BMR.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel describes habitual daily activity. It scales BMR into total
// daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// BodyGoal is the user's body-composition goal. It determines the calorie
// surplus and the protein requirement per kilogram of body weight.
type BodyGoal string

const (
	GoalLeanMuscle BodyGoal = "lean_muscle"
	GoalBulkMuscle BodyGoal = "bulk_muscle"
)

// Profile holds the physiological data a user's daily targets are derived from.
// All numeric fields are expected to be positive before any calculation runs;
// validation happens at the delivery layer, not here.
type Profile struct {
	UserID        uuid.UUID     // Links this profile to the User it belongs to.
	Age           int           // Age in years.
	Gender        Gender        // Biological sex for the BMR formula.
	HeightCm      float64       // Height in centimeters.
	WeightKg      float64       // Weight in kilograms.
	ActivityLevel ActivityLevel // Habitual activity. Empty means sedentary.
	BodyGoal      BodyGoal      // Body-composition goal.
	UpdatedAt     time.Time     // Timestamp of the last modification to this profile.
}
