package services

import (
	"context"
	"time"

	"healthmate/internal/models"
	"healthmate/internal/repository"

	"github.com/google/uuid"
)

// Replier produces the assistant's next turn; it always yields content.
type Replier interface {
	Reply(ctx context.Context, user *models.User, history []models.ChatMessage) (string, bool)
}

type SendResult struct {
	ChatID      uuid.UUID          `json:"chatId"`
	UserMessage models.ChatMessage `json:"userMessage"`
	AIMessage   models.ChatMessage `json:"aiMessage"`
	Degraded    bool               `json:"degraded"`
}

type ChatService struct {
	chats     repository.ChatRepository
	assistant Replier
	now       func() time.Time
}

func NewChatService(chats repository.ChatRepository, assistant Replier) *ChatService {
	return &ChatService{chats: chats, assistant: assistant, now: time.Now}
}

// SendMessage persists the user's message before calling the model, so the
// message survives a provider failure. The reply is persisted afterwards.
func (s *ChatService) SendMessage(ctx context.Context, user *models.User, chatID uuid.UUID, content string) (*SendResult, error) {
	chat, err := s.chats.Get(ctx, user.ID, chatID)
	if err != nil {
		return nil, err
	}

	userMsg := &models.ChatMessage{Role: models.RoleUser, Content: content, Timestamp: s.now()}
	if err := s.chats.AppendMessages(ctx, user.ID, chatID, userMsg); err != nil {
		return nil, err
	}

	history := append(chat.Messages, *userMsg)
	reply, degraded := s.assistant.Reply(ctx, user, history)

	aiMsg := &models.ChatMessage{Role: models.RoleAssistant, Content: reply, Timestamp: s.now()}
	if err := s.chats.AppendMessages(ctx, user.ID, chatID, aiMsg); err != nil {
		return nil, err
	}

	return &SendResult{
		ChatID:      chatID,
		UserMessage: *userMsg,
		AIMessage:   *aiMsg,
		Degraded:    degraded,
	}, nil
}
