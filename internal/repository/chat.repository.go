package repository

import (
	"context"
	"time"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	List(ctx context.Context, userID uuid.UUID, page Page) ([]models.Chat, int64, error)
	Get(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error)
	UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*models.Chat, error)
	AppendMessages(ctx context.Context, userID, chatID uuid.UUID, msgs ...*models.ChatMessage) error
	SoftDelete(ctx context.Context, userID, chatID uuid.UUID) error
}

type chatRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db, now: time.Now}
}

func activeChatsOf(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("chats.user_id = ? AND chats.is_active = ?", userID, true)
	}
}

func orderedMessages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// chats is the only entry point for chat lookups; the owner and active
// predicates are always present.
func (r *chatRepository) chats(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Chat{}).Scopes(activeChatsOf(userID))
}

func (r *chatRepository) Create(ctx context.Context, chat *models.Chat) error {
	chat.IsActive = true
	return r.db.WithContext(ctx).Omit("Messages").Create(chat).Error
}

func (r *chatRepository) List(ctx context.Context, userID uuid.UUID, page Page) ([]models.Chat, int64, error) {
	var total int64
	if err := r.chats(ctx, userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	chats := []models.Chat{}
	err := page.apply(r.chats(ctx, userID)).
		Preload("Messages", orderedMessages).
		Order("updated_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, 0, err
	}
	return chats, total, nil
}

func (r *chatRepository) Get(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	var chat models.Chat
	err := r.chats(ctx, userID).
		Where("chats.id = ?", chatID).
		Preload("Messages", orderedMessages).
		First(&chat).Error
	if err != nil {
		return nil, translate(err, "Chat not found")
	}
	return &chat, nil
}

func (r *chatRepository) UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*models.Chat, error) {
	res := r.chats(ctx, userID).Where("chats.id = ?", chatID).Update("title", title)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Chat not found")
	}
	return r.Get(ctx, userID, chatID)
}

// AppendMessages adds msgs after the chat's current last message and bumps
// the chat's updated_at. Two concurrent appends to one chat may interleave.
func (r *chatRepository) AppendMessages(ctx context.Context, userID, chatID uuid.UUID, msgs ...*models.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	res := r.chats(ctx, userID).Where("chats.id = ?", chatID).Update("updated_at", r.now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Chat not found")
	}

	var last int
	err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("chat_id = ?", chatID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&last).Error
	if err != nil {
		return err
	}

	for i, m := range msgs {
		m.ChatID = chatID
		m.Position = last + 1 + i
		if m.Timestamp.IsZero() {
			m.Timestamp = r.now()
		}
	}
	return r.db.WithContext(ctx).Create(msgs).Error
}

// SoftDelete flips is_active; the row is kept.
func (r *chatRepository) SoftDelete(ctx context.Context, userID, chatID uuid.UUID) error {
	res := r.chats(ctx, userID).Where("chats.id = ?", chatID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Chat not found")
	}
	return nil
}
