package repository

import (
	"context"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportFilter struct {
	ReportType string
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.HealthReport) error
	List(ctx context.Context, userID uuid.UUID, filter ReportFilter, page Page) ([]models.HealthReport, int64, error)
	Get(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error)
	Update(ctx context.Context, userID, reportID uuid.UUID, patch models.Patch) (*models.HealthReport, error)
	Delete(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.HealthReport{}).Where("user_id = ?", userID)
}

func (r *reportRepository) Create(ctx context.Context, report *models.HealthReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// List never loads extracted_text; it can be large and is only served by Get.
func (r *reportRepository) List(ctx context.Context, userID uuid.UUID, filter ReportFilter, page Page) ([]models.HealthReport, int64, error) {
	q := r.owned(ctx, userID)
	if filter.ReportType != "" {
		q = q.Where("report_type = ?", filter.ReportType)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reports := []models.HealthReport{}
	err := page.apply(q).
		Omit("extracted_text").
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *reportRepository) Get(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error) {
	var report models.HealthReport
	if err := r.owned(ctx, userID).Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, translate(err, "Report not found")
	}
	return &report, nil
}

func (r *reportRepository) Update(ctx context.Context, userID, reportID uuid.UUID, patch models.Patch) (*models.HealthReport, error) {
	if patch.Empty() {
		return r.Get(ctx, userID, reportID)
	}
	res := r.owned(ctx, userID).Where("id = ?", reportID).Updates(map[string]interface{}(patch))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Report not found")
	}
	return r.Get(ctx, userID, reportID)
}

// Delete returns the removed record so the caller can drop its stored file.
func (r *reportRepository) Delete(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error) {
	report, err := r.Get(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", reportID, userID).Delete(&models.HealthReport{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Report not found")
	}
	return report, nil
}
