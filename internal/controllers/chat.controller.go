package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"healthmate/internal/apperr"
	"healthmate/internal/models"
	"healthmate/internal/repository"
	"healthmate/internal/services"
	"healthmate/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxChatTitleLength = 200
	maxMessageLength   = 4000
)

// MessageSender runs one chat turn.
type MessageSender interface {
	SendMessage(ctx context.Context, user *models.User, chatID uuid.UUID, content string) (*services.SendResult, error)
}

type ChatTitleRequest struct {
	Title string `json:"title" example:"Blood sugar questions"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required" example:"Is a fasting sugar of 110 normal?"`
}

type ChatListResponse struct {
	Chats       []models.Chat `json:"chats"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int64         `json:"total"`
}

type SendMessageResponse struct {
	UserMessage models.ChatMessage `json:"userMessage"`
	AIMessage   models.ChatMessage `json:"aiMessage"`
	Chat        *models.Chat       `json:"chat"`
}

type ChatController struct {
	Responder
	chats  repository.ChatRepository
	sender MessageSender
}

func NewChatController(chats repository.ChatRepository, sender MessageSender, r Responder) *ChatController {
	return &ChatController{Responder: r, chats: chats, sender: sender}
}

func chatTitle(raw string, required bool) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		if required {
			return "", apperr.Validation("Title is required")
		}
		return models.DefaultChatTitle, nil
	}
	if len([]rune(title)) > maxChatTitleLength {
		return "", apperr.Validation(fmt.Sprintf("Title must be at most %d characters", maxChatTitleLength))
	}
	return title, nil
}

// CreateChat godoc
// @Summary Start a chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat body ChatTitleRequest false "Optional title"
// @Success 201 {object} map[string]interface{} "Chat created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /chat [post]
func (cc *ChatController) CreateChat(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}

	var req ChatTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		cc.badRequest(c, err)
		return
	}
	title, err := chatTitle(req.Title, false)
	if err != nil {
		cc.respondError(c, err)
		return
	}

	chat := &models.Chat{UserID: user.ID, Title: title, Messages: []models.ChatMessage{}}
	if err := cc.chats.Create(c.Request.Context(), chat); err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusCreated, "Chat created successfully", chat)
}

// ListChats godoc
// @Summary List active chats
// @Description Most recently updated first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{} "Chats retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid pagination"
// @Router /chat [get]
func (cc *ChatController) ListChats(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}
	page, err := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		cc.respondError(c, err)
		return
	}

	chats, total, err := cc.chats.List(c.Request.Context(), user.ID, page)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusOK, "Chats retrieved successfully", ChatListResponse{
		Chats:       chats,
		TotalPages:  repository.TotalPages(total, page.Limit),
		CurrentPage: page.Number,
		Total:       total,
	})
}

// GetChat godoc
// @Summary Get a chat with its messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Success 200 {object} map[string]interface{} "Chat retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid chat ID"
// @Failure 404 {object} map[string]interface{} "Chat not found"
// @Router /chat/{chatId} [get]
func (cc *ChatController) GetChat(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}
	chatID, err := pathID(c, "chatId", "chat")
	if err != nil {
		cc.respondError(c, err)
		return
	}

	chat, err := cc.chats.Get(c.Request.Context(), user.ID, chatID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusOK, "Chat retrieved successfully", chat)
}

// UpdateChatTitle godoc
// @Summary Rename a chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Param chat body ChatTitleRequest true "New title"
// @Success 200 {object} map[string]interface{} "Chat updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Chat not found"
// @Router /chat/{chatId} [put]
func (cc *ChatController) UpdateChatTitle(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}
	chatID, err := pathID(c, "chatId", "chat")
	if err != nil {
		cc.respondError(c, err)
		return
	}

	var req ChatTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.badRequest(c, err)
		return
	}
	title, err := chatTitle(req.Title, true)
	if err != nil {
		cc.respondError(c, err)
		return
	}

	chat, err := cc.chats.UpdateTitle(c.Request.Context(), user.ID, chatID, title)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusOK, "Chat updated successfully", chat)
}

// SendMessage godoc
// @Summary Send a message and get the assistant's reply
// @Description The user's message is stored even when the assistant is unavailable
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Param message body SendMessageRequest true "Message"
// @Success 200 {object} map[string]interface{} "Message sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Chat not found"
// @Router /chat/{chatId}/message [post]
func (cc *ChatController) SendMessage(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}
	chatID, err := pathID(c, "chatId", "chat")
	if err != nil {
		cc.respondError(c, err)
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.badRequest(c, err)
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		cc.respondError(c, apperr.Validation("Message content is required"))
		return
	}
	if len([]rune(content)) > maxMessageLength {
		cc.respondError(c, apperr.Validation(fmt.Sprintf("Message must be at most %d characters", maxMessageLength)))
		return
	}

	res, err := cc.sender.SendMessage(c.Request.Context(), user, chatID, content)
	if err != nil {
		cc.respondError(c, err)
		return
	}

	chat, err := cc.chats.Get(c.Request.Context(), user.ID, chatID)
	if err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusOK, "Message sent successfully", SendMessageResponse{
		UserMessage: res.UserMessage,
		AIMessage:   res.AIMessage,
		Chat:        chat,
	})
}

// DeleteChat godoc
// @Summary Delete a chat
// @Description The chat is deactivated and disappears from every chat endpoint
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param chatId path string true "Chat ID"
// @Success 200 {object} map[string]interface{} "Chat deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid chat ID"
// @Failure 404 {object} map[string]interface{} "Chat not found"
// @Router /chat/{chatId} [delete]
func (cc *ChatController) DeleteChat(c *gin.Context) {
	user, ok := cc.currentUser(c)
	if !ok {
		return
	}
	chatID, err := pathID(c, "chatId", "chat")
	if err != nil {
		cc.respondError(c, err)
		return
	}

	if err := cc.chats.SoftDelete(c.Request.Context(), user.ID, chatID); err != nil {
		cc.respondError(c, err)
		return
	}
	cc.success(c, http.StatusOK, "Chat deleted successfully", nil)
}
