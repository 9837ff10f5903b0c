package repository

import (
	"context"
	"errors"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmailTaken = apperr.Validation("User already exists")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, patch models.Patch) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create rejects an email that is already registered. The unique index
// backs the pre-check when two registrations race.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err, "User not found")
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, translate(err, "User not found")
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, patch models.Patch) (*models.User, error) {
	if !patch.Empty() {
		res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}(patch))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NotFound("User not found")
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes the user together with every record they own.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	chatIDs := db.Model(&models.Chat{}).Select("id").Where("user_id = ?", id)
	if err := db.Where("chat_id IN (?)", chatIDs).Delete(&models.ChatMessage{}).Error; err != nil {
		return err
	}
	for _, owned := range []interface{}{&models.Chat{}, &models.HealthReport{}, &models.Vitals{}} {
		if err := db.Where("user_id = ?", id).Delete(owned).Error; err != nil {
			return err
		}
	}
	res := db.Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}
