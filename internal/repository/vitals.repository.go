package repository

import (
	"context"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VitalsFilter bounds vital_date inclusively; nil means open-ended.
type VitalsFilter struct {
	From *time.Time
	To   *time.Time
}

type VitalsRepository interface {
	Create(ctx context.Context, vitals *models.Vitals) error
	List(ctx context.Context, userID uuid.UUID, filter VitalsFilter, page Page) ([]models.Vitals, int64, error)
	Get(ctx context.Context, userID, vitalsID uuid.UUID) (*models.Vitals, error)
	Update(ctx context.Context, userID, vitalsID uuid.UUID, patch models.Patch) (*models.Vitals, error)
	Delete(ctx context.Context, userID, vitalsID uuid.UUID) error
	Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Vitals, error)
}

type vitalsRepository struct {
	db *gorm.DB
}

func NewVitalsRepository(db *gorm.DB) VitalsRepository {
	return &vitalsRepository{db: db}
}

func (r *vitalsRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Vitals{}).Where("user_id = ?", userID)
}

func (r *vitalsRepository) Create(ctx context.Context, vitals *models.Vitals) error {
	return r.db.WithContext(ctx).Create(vitals).Error
}

func (r *vitalsRepository) List(ctx context.Context, userID uuid.UUID, filter VitalsFilter, page Page) ([]models.Vitals, int64, error) {
	q := r.owned(ctx, userID)
	if filter.From != nil {
		q = q.Where("vital_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("vital_date <= ?", *filter.To)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	vitals := []models.Vitals{}
	if err := page.apply(q).Order("vital_date DESC").Find(&vitals).Error; err != nil {
		return nil, 0, err
	}
	return vitals, total, nil
}

func (r *vitalsRepository) Get(ctx context.Context, userID, vitalsID uuid.UUID) (*models.Vitals, error) {
	var v models.Vitals
	if err := r.owned(ctx, userID).Where("id = ?", vitalsID).First(&v).Error; err != nil {
		return nil, translate(err, "Vitals record not found")
	}
	return &v, nil
}

func (r *vitalsRepository) Update(ctx context.Context, userID, vitalsID uuid.UUID, patch models.Patch) (*models.Vitals, error) {
	if patch.Empty() {
		return r.Get(ctx, userID, vitalsID)
	}
	res := r.owned(ctx, userID).Where("id = ?", vitalsID).Updates(map[string]interface{}(patch))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Vitals record not found")
	}
	return r.Get(ctx, userID, vitalsID)
}

func (r *vitalsRepository) Delete(ctx context.Context, userID, vitalsID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", vitalsID, userID).Delete(&models.Vitals{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Vitals record not found")
	}
	return nil
}

// Since returns the user's records with vital_date >= since, oldest first.
func (r *vitalsRepository) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Vitals, error) {
	vitals := []models.Vitals{}
	err := r.owned(ctx, userID).
		Where("vital_date >= ?", since).
		Order("vital_date ASC").
		Find(&vitals).Error
	return vitals, err
}
