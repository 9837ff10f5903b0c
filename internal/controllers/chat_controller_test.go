package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"healthmate/internal/apperr"
	"healthmate/internal/controllers"
	"healthmate/internal/logger"
	"healthmate/internal/mocks"
	"healthmate/internal/models"
	"healthmate/internal/repository"
	"healthmate/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupChat(r controllers.Responder) (*gin.Engine, *mocks.MockChatRepository, *mocks.MockMessageSender) {
	chats := new(mocks.MockChatRepository)
	sender := new(mocks.MockMessageSender)
	ctrl := controllers.NewChatController(chats, sender, r)

	router := newRouter(testUser)
	router.POST("/api/chat", ctrl.CreateChat)
	router.GET("/api/chat", ctrl.ListChats)
	router.GET("/api/chat/:chatId", ctrl.GetChat)
	router.PUT("/api/chat/:chatId", ctrl.UpdateChatTitle)
	router.POST("/api/chat/:chatId/message", ctrl.SendMessage)
	router.DELETE("/api/chat/:chatId", ctrl.DeleteChat)
	return router, chats, sender
}

func TestCreateChat_DefaultTitle(t *testing.T) {
	r, chats, _ := setupChat(responder())
	chats.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Chat) bool {
		return c.Title == models.DefaultChatTitle && c.UserID == testUser.ID
	})).Return(nil)

	w := perform(r, http.MethodPost, "/api/chat", nil)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, models.DefaultChatTitle, decodeData(t, w)["title"])
	chats.AssertExpectations(t)
}

func TestCreateChat_TitleTooLong(t *testing.T) {
	r, chats, _ := setupChat(responder())
	long := make([]rune, 201)
	for i := range long {
		long[i] = 'x'
	}

	w := perform(r, http.MethodPost, "/api/chat", jsonBody(t, map[string]string{"title": string(long)}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	chats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListChats_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		page       repository.Page
		total      int64
		wantStatus int
		wantPages  float64
	}{
		{"defaults", "", repository.Page{Number: 1, Limit: 10}, 25, http.StatusOK, 3},
		{"explicit", "?page=2&limit=5", repository.Page{Number: 2, Limit: 5}, 10, http.StatusOK, 2},
		{"limit over max", "?limit=101", repository.Page{}, 0, http.StatusBadRequest, 0},
		{"bad page", "?page=zero", repository.Page{}, 0, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, chats, _ := setupChat(responder())
			if tt.wantStatus == http.StatusOK {
				chats.On("List", mock.Anything, testUser.ID, tt.page).
					Return([]models.Chat{{ID: uuid.New(), UserID: testUser.ID, Title: "A", IsActive: true}}, tt.total, nil)
			}

			w := perform(r, http.MethodGet, "/api/chat"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				chats.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			data := decodeData(t, w)
			assert.Equal(t, tt.wantPages, data["totalPages"])
			assert.Equal(t, float64(tt.page.Number), data["currentPage"])
			assert.Equal(t, float64(tt.total), data["total"])
			assert.Len(t, data["chats"], 1)
		})
	}
}

func TestChatRoutes_MalformedID(t *testing.T) {
	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/api/chat/not-a-uuid", ""},
		{http.MethodPut, "/api/chat/not-a-uuid", `{"title":"x"}`},
		{http.MethodPost, "/api/chat/not-a-uuid/message", `{"content":"hi"}`},
		{http.MethodDelete, "/api/chat/not-a-uuid", ""},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			r, chats, sender := setupChat(responder())
			var body = jsonBody(t, req.body)
			if req.body == "" {
				body = nil
			}

			w := perform(r, req.method, req.path, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid chat ID", decodeEnvelope(t, w).Message)
			assert.Empty(t, chats.Calls)
			assert.Empty(t, sender.Calls)
		})
	}
}

func TestGetChat_NotFound(t *testing.T) {
	r, chats, _ := setupChat(responder())
	id := uuid.New()
	chats.On("Get", mock.Anything, testUser.ID, id).Return(nil, apperr.NotFound("Chat not found"))

	w := perform(r, http.MethodGet, "/api/chat/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chat not found", decodeEnvelope(t, w).Message)
}

func TestUpdateChatTitle(t *testing.T) {
	t.Run("trims and saves", func(t *testing.T) {
		r, chats, _ := setupChat(responder())
		id := uuid.New()
		chats.On("UpdateTitle", mock.Anything, testUser.ID, id, "Sugar log").
			Return(&models.Chat{ID: id, Title: "Sugar log"}, nil)

		w := perform(r, http.MethodPut, "/api/chat/"+id.String(), jsonBody(t, `{"title":"  Sugar log "}`))

		assert.Equal(t, http.StatusOK, w.Code)
		chats.AssertExpectations(t)
	})

	t.Run("blank title", func(t *testing.T) {
		r, chats, _ := setupChat(responder())

		w := perform(r, http.MethodPut, "/api/chat/"+uuid.NewString(), jsonBody(t, `{"title":"   "}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title is required", decodeEnvelope(t, w).Message)
		chats.AssertNotCalled(t, "UpdateTitle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSendMessage(t *testing.T) {
	r, chats, sender := setupChat(responder())
	id := uuid.New()
	userMsg := models.ChatMessage{Role: models.RoleUser, Content: "Is 110 fasting normal?"}
	aiMsg := models.ChatMessage{Role: models.RoleAssistant, Content: services.PlaceholderReply}

	sender.On("SendMessage", mock.Anything, testUser, id, "Is 110 fasting normal?").
		Return(&services.SendResult{ChatID: id, UserMessage: userMsg, AIMessage: aiMsg, Degraded: true}, nil)
	chats.On("Get", mock.Anything, testUser.ID, id).
		Return(&models.Chat{ID: id, Title: "New Chat", Messages: []models.ChatMessage{userMsg, aiMsg}}, nil)

	w := perform(r, http.MethodPost, "/api/chat/"+id.String()+"/message", jsonBody(t, `{"content":" Is 110 fasting normal? "}`))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "Is 110 fasting normal?", data["userMessage"].(map[string]interface{})["content"])
	assert.Equal(t, services.PlaceholderReply, data["aiMessage"].(map[string]interface{})["content"])
	assert.Len(t, data["chat"].(map[string]interface{})["messages"], 2)
}

func TestSendMessage_RejectsEmptyContent(t *testing.T) {
	for _, body := range []string{`{"content":"   "}`, `{}`} {
		r, _, sender := setupChat(responder())

		w := perform(r, http.MethodPost, "/api/chat/"+uuid.NewString()+"/message", jsonBody(t, body))

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestDeleteChat(t *testing.T) {
	r, chats, _ := setupChat(responder())
	id := uuid.New()
	chats.On("SoftDelete", mock.Anything, testUser.ID, id).Return(nil).Once()
	chats.On("SoftDelete", mock.Anything, testUser.ID, id).Return(apperr.NotFound("Chat not found")).Once()

	first := perform(r, http.MethodDelete, "/api/chat/"+id.String(), nil)
	second := perform(r, http.MethodDelete, "/api/chat/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusNotFound, second.Code)
}

func TestInternalErrorDetailOnlyInDevelopment(t *testing.T) {
	for _, dev := range []bool{false, true} {
		r, chats, _ := setupChat(controllers.NewResponder(dev, logger.NewNop()))
		chats.On("List", mock.Anything, testUser.ID, mock.Anything).Return(nil, int64(0), errors.New("connection refused"))

		w := perform(r, http.MethodGet, "/api/chat", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Something went wrong", env.Message)
		if dev {
			assert.Equal(t, "connection refused", env.Error)
		} else {
			assert.Empty(t, env.Error)
		}
	}
}
