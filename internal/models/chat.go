package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	DefaultChatTitle = "New Chat"
)

// Chat is never physically deleted; IsActive=false hides it from every query.
type Chat struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_chats_user_active" json:"userId"`
	Title     string        `gorm:"size:200;not null" json:"title" example:"Blood sugar questions"`
	Messages  []ChatMessage `gorm:"foreignKey:ChatID" json:"messages"`
	IsActive  bool          `gorm:"not null;default:true;index:idx_chats_user_active" json:"isActive"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_messages_order" json:"-"`
	Position  int       `gorm:"not null;index:idx_chat_messages_order" json:"-"`
	Role      string    `gorm:"size:16;not null" json:"role" example:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
