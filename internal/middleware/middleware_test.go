package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthmate/internal/apperr"
	"healthmate/internal/auth"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"
	"healthmate/internal/mocks"
	"healthmate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

func setupAuthRouter(t *testing.T, users *mocks.MockUserRepository) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenManager(testSecret, 0)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth.NewVerifier(tokens, users), logger.NewNop()))
	r.GET("/me", func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		id, _ := middleware.CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "id": id.String()})
	})
	return r, tokens
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	known := &models.User{ID: uuid.New(), Email: "amal@example.com"}
	deleted := uuid.New()
	broken := uuid.New()

	tests := []struct {
		name       string
		header     func(tokens *auth.TokenManager) string
		mock       func(users *mocks.MockUserRepository)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			header:     func(*auth.TokenManager) string { return "" },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Access denied. No token provided.",
		},
		{
			name:       "wrong scheme",
			header:     func(*auth.TokenManager) string { return "Basic abc" },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Access denied. No token provided.",
		},
		{
			name:       "garbage token",
			header:     func(*auth.TokenManager) string { return "Bearer not.a.jwt" },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid token.",
		},
		{
			name: "user deleted after issuance",
			header: func(tokens *auth.TokenManager) string {
				tok, _ := tokens.Issue(deleted)
				return "Bearer " + tok
			},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByID", mock.Anything, deleted).Return(nil, apperr.NotFound("User not found"))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "User not found for token.",
		},
		{
			name: "store failure",
			header: func(tokens *auth.TokenManager) string {
				tok, _ := tokens.Issue(broken)
				return "Bearer " + tok
			},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByID", mock.Anything, broken).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Something went wrong",
		},
		{
			name: "valid token",
			header: func(tokens *auth.TokenManager) string {
				tok, _ := tokens.Issue(known.ID)
				return "Bearer " + tok
			},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByID", mock.Anything, known.ID).Return(known, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			if tt.mock != nil {
				tt.mock(users)
			}
			r, tokens := setupAuthRouter(t, users)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if h := tt.header(tokens); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, known.Email, body["email"])
				assert.Equal(t, known.ID.String(), body["id"])
				return
			}
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.wantMsg, body["message"])
			users.AssertExpectations(t)
		})
	}
}

func TestAuthMiddleware_BadTokenSkipsLookup(t *testing.T) {
	users := new(mocks.MockUserRepository)
	r, _ := setupAuthRouter(t, users)

	other, err := auth.NewTokenManager("another-secret-that-is-long-enough-xx", 0)
	require.NoError(t, err)
	tok, err := other.Issue(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, origin := range []string{"http://localhost:5173", "https://app.healthmate.dev"} {
		t.Run(origin, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.CORS("http://localhost:5173, https://app.healthmate.dev/"))
			r.POST("/api/auth/login", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS("http://localhost:5173"))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryAnswersWithEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger.NewNop()), middleware.Recovery(logger.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Something went wrong", body["message"])
}
