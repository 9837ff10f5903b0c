package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/extract"
	"healthmate/internal/llm"
	"healthmate/internal/logger"
	"healthmate/internal/models"
	"healthmate/internal/repository"
	"healthmate/internal/storage"
	"healthmate/internal/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultMaxUploadBytes = 10 << 20
	MaxTitleLength        = 200
)

// AllowedUploadTypes maps accepted declared MIME types to the type the file
// content must sniff as.
var AllowedUploadTypes = map[string]string{
	"application/pdf": "application/pdf",
	"image/jpeg":      "image/jpeg",
	"image/jpg":       "image/jpeg",
	"image/png":       "image/png",
}

type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Title       string
	ReportType  string
	ReportDate  string
}

// Analyzer runs the structured report analysis.
type Analyzer interface {
	AnalyzeReport(ctx context.Context, user *models.User, report *models.HealthReport) (*llm.ReportAnalysis, error)
}

type ReportService struct {
	reports   repository.ReportRepository
	store     storage.FileStore
	extractor extract.TextExtractor
	analyzer  Analyzer
	log       *logger.Logger
	maxBytes  int64
	now       func() time.Time
}

func NewReportService(
	reports repository.ReportRepository,
	store storage.FileStore,
	extractor extract.TextExtractor,
	analyzer Analyzer,
	maxBytes int64,
	log *logger.Logger,
) *ReportService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ReportService{
		reports:   reports,
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		log:       log,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

func (s *ReportService) MaxUploadBytes() int64 { return s.maxBytes }

// FileTooLargeMessage is shown for uploads over the cap.
func FileTooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File too large. Maximum size is %dMB.", maxBytes>>20)
}

// validate runs every check that can reject an upload; nothing is written
// until it passes.
func (s *ReportService) validate(in UploadInput) (*models.HealthReport, string, error) {
	if len(in.Data) == 0 {
		return nil, "", apperr.Validation("No file uploaded")
	}
	if int64(len(in.Data)) > s.maxBytes {
		return nil, "", apperr.Validation(FileTooLargeMessage(s.maxBytes))
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(in.ContentType, ";")[0]))
	want, ok := AllowedUploadTypes[declared]
	if !ok {
		return nil, "", apperr.Validation("Invalid file type. Only PDF, JPEG, JPG, and PNG files are allowed.")
	}
	if !mimetype.Detect(in.Data).Is(want) {
		return nil, "", apperr.Validation("File content does not match its declared type")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, "", apperr.Validation("Title is required")
	}
	if len([]rune(title)) > MaxTitleLength {
		return nil, "", apperr.Validation(fmt.Sprintf("Title must be at most %d characters", MaxTitleLength))
	}
	rt, ok := models.ParseReportType(strings.TrimSpace(in.ReportType))
	if !ok {
		return nil, "", apperr.Validation("Invalid report type")
	}
	reportDate := s.now().UTC()
	if strings.TrimSpace(in.ReportDate) != "" {
		d, err := utils.ParseDate(in.ReportDate)
		if err != nil {
			return nil, "", err
		}
		reportDate = d
	}

	return &models.HealthReport{
		Title:      title,
		ReportType: rt,
		ReportDate: reportDate,
		FileType:   declared,
		FileSize:   int64(len(in.Data)),
	}, want, nil
}

// Upload validates, stores the file, extracts PDF text and inserts the
// record. A failed extraction leaves ExtractedText nil. A failed insert
// removes the stored file again.
func (s *ReportService) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (*models.HealthReport, error) {
	report, sniffed, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	report.UserID = userID

	key := storage.ReportKey(utils.GenerateUploadName(s.now(), in.FileName))
	stored, err := s.store.Save(ctx, key, report.FileType, in.Data)
	if err != nil {
		return nil, apperr.Internal("Failed to store file", err)
	}
	report.StorageKey = stored.Key
	report.FileURL = stored.URL

	if sniffed == "application/pdf" && s.extractor != nil {
		text, err := s.extractor.ExtractText(in.Data)
		if err != nil {
			s.log.Warn("PDF text extraction failed", "storage_key", stored.Key, "error", err)
		} else {
			report.ExtractedText = &text
		}
	}

	if err := s.reports.Create(ctx, report); err != nil {
		if delErr := s.store.Delete(ctx, stored.Key); delErr != nil {
			s.log.Error("Failed to remove orphaned upload", "storage_key", stored.Key, "error", delErr)
		}
		return nil, apperr.Internal("Failed to save report", err)
	}
	return report, nil
}

// Delete removes the record and then its file. A file that is already gone
// is fine; other file errors are logged, the record stays deleted.
func (s *ReportService) Delete(ctx context.Context, userID, reportID uuid.UUID) error {
	report, err := s.reports.Delete(ctx, userID, reportID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, report.StorageKey); err != nil {
		s.log.Error("Failed to remove report file", "report_id", reportID, "storage_key", report.StorageKey, "error", err)
	}
	return nil
}

// Analyze runs the model over an owned report and stores the result.
func (s *ReportService) Analyze(ctx context.Context, user *models.User, reportID uuid.UUID) (*models.HealthReport, error) {
	report, err := s.reports.Get(ctx, user.ID, reportID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.AnalyzeReport(ctx, user, report)
	if err != nil {
		return nil, err
	}

	findings, err := json.Marshal(models.KeyFindings{
		Findings:        analysis.KeyFindings,
		Recommendations: analysis.Recommendations,
	})
	if err != nil {
		return nil, apperr.Internal("Failed to encode findings", err)
	}

	patch := models.Patch{
		"ai_summary":   &analysis.Summary,
		"key_findings": datatypes.JSON(findings),
		"analyzed_at":  s.now().UTC(),
	}
	if analysis.SummaryUrdu != "" {
		patch["ai_summary_urdu"] = &analysis.SummaryUrdu
	}
	return s.reports.Update(ctx, user.ID, reportID, patch)
}
