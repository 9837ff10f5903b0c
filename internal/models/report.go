package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReportType string

const (
	ReportLabTest      ReportType = "lab_test"
	ReportPrescription ReportType = "prescription"
	ReportXray         ReportType = "xray"
	ReportScan         ReportType = "scan"
	ReportUltrasound   ReportType = "ultrasound"
	ReportOther        ReportType = "other"
)

var ReportTypes = []ReportType{ReportLabTest, ReportPrescription, ReportXray, ReportScan, ReportUltrasound, ReportOther}

func ParseReportType(s string) (ReportType, bool) {
	for _, t := range ReportTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// HealthReport starts out "uploaded" with nil analysis fields; AnalyzedAt is
// set once an analysis has been stored.
type HealthReport struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_reports_user_date" json:"userId"`
	Title         string         `gorm:"size:200;not null" json:"title" example:"CBC March"`
	ReportType    ReportType     `gorm:"size:32;not null" json:"reportType" example:"lab_test"`
	ReportDate    time.Time      `gorm:"not null;index:idx_reports_user_date" json:"reportDate"`
	FileURL       string         `gorm:"size:1024;not null" json:"fileUrl" example:"/uploads/reports/file-1700000000000-123456789.pdf"`
	StorageKey    string         `gorm:"size:1024;not null" json:"-"`
	FileType      string         `gorm:"size:64;not null" json:"fileType" example:"application/pdf"`
	FileSize      int64          `gorm:"not null" json:"fileSize" example:"20480"`
	AISummary     *string        `gorm:"type:text" json:"aiSummary"`
	AISummaryUrdu *string        `gorm:"type:text" json:"aiSummaryUrdu"`
	KeyFindings   datatypes.JSON `json:"keyFindings" swaggertype:"object"`
	ExtractedText *string        `gorm:"type:text" json:"extractedText"`
	AnalyzedAt    *time.Time     `json:"analyzedAt"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// KeyFindings is the stored shape of a report analysis' structured findings.
type KeyFindings struct {
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}
