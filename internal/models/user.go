package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StringList is stored as a JSON array column.
type StringList = datatypes.JSONSlice[string]

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func ValidBloodGroup(g string) bool {
	for _, b := range BloodGroups {
		if b == g {
			return true
		}
	}
	return false
}

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id" example:"7d5e1c8a-3b7f-4a43-9d1e-5b8c2f9a0e11"`
	Email             string     `gorm:"size:255;uniqueIndex;not null" json:"email" example:"amina@example.com"`
	Password          string     `gorm:"size:255;not null" json:"-"`
	FullName          string     `gorm:"size:100;not null" json:"fullName" example:"Amina Khan"`
	DateOfBirth       *time.Time `json:"dateOfBirth" example:"1990-04-12T00:00:00Z"`
	BloodGroup        *string    `gorm:"size:3" json:"bloodGroup" example:"O+"`
	Allergies         StringList `json:"allergies" swaggertype:"array,string"`
	ChronicConditions StringList `json:"chronicConditions" swaggertype:"array,string"`
	EmergencyContact  *string    `gorm:"size:255" json:"emergencyContact"`
	GeminiAPIKey      *string    `gorm:"size:255" json:"geminiApiKey"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// HasGeminiKey reports whether the user brought their own Gemini key.
func (u *User) HasGeminiKey() bool {
	return u.GeminiAPIKey != nil && *u.GeminiAPIKey != ""
}
