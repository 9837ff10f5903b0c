package models

import (
	"time"

	"github.com/google/uuid"
)

// Vitals is one observation. Every metric is independently optional.
type Vitals struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index:idx_vitals_user_date" json:"userId"`
	VitalDate              time.Time `gorm:"not null;index:idx_vitals_user_date" json:"vitalDate"`
	BloodPressureSystolic  *float64  `json:"bloodPressureSystolic" example:"120"`
	BloodPressureDiastolic *float64  `json:"bloodPressureDiastolic" example:"80"`
	BloodSugar             *float64  `json:"bloodSugar" example:"95"`
	Weight                 *float64  `json:"weight" example:"70.5"`
	Temperature            *float64  `json:"temperature" example:"36.8"`
	HeartRate              *float64  `json:"heartRate" example:"72"`
	Notes                  *string   `gorm:"size:1000" json:"notes"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Range is an inclusive bound for a vitals metric.
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// VitalRanges is keyed by JSON field name.
var VitalRanges = map[string]Range{
	"bloodPressureSystolic":  {0, 300},
	"bloodPressureDiastolic": {0, 300},
	"bloodSugar":             {0, 1000},
	"weight":                 {0, 1000},
	"temperature":            {30, 45},
	"heartRate":              {30, 300},
}
