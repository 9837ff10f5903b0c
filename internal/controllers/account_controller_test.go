package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"healthmate/internal/apperr"
	"healthmate/internal/auth"
	"healthmate/internal/controllers"
	"healthmate/internal/mocks"
	"healthmate/internal/models"
	"healthmate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAccount(t *testing.T, user *models.User) (*gin.Engine, *mocks.MockUserRepository, *auth.TokenManager) {
	t.Helper()
	users := new(mocks.MockUserRepository)
	tokens, err := auth.NewTokenManager("controller-test-secret-0123456789abcd", 0)
	require.NoError(t, err)

	ctrl := controllers.NewAccountController(users, tokens, responder())
	r := newRouter(user)
	r.POST("/api/auth/register", ctrl.Register)
	r.POST("/api/auth/login", ctrl.Login)
	r.GET("/api/auth/profile", ctrl.GetProfile)
	r.PUT("/api/auth/profile", ctrl.UpdateProfile)
	return r, users, tokens
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		mock       func(users *mocks.MockUserRepository)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success",
			body: map[string]interface{}{
				"email": "amina@example.com", "password": "secret123", "fullName": " Amina Khan ",
				"bloodGroup": "O+", "allergies": []string{" dust ", ""},
			},
			mock: func(users *mocks.MockUserRepository) {
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.FullName == "Amina Khan" && *u.BloodGroup == "O+" &&
						len(u.Allergies) == 1 && u.Allergies[0] == "dust" &&
						u.Password != "secret123" && auth.CheckPassword(u.Password, "secret123")
				})).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "User registered successfully",
		},
		{
			name: "duplicate email",
			body: map[string]interface{}{"email": "amina@example.com", "password": "secret123", "fullName": "Amina"},
			mock: func(users *mocks.MockUserRepository) {
				users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrEmailTaken)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "User already exists",
		},
		{
			name:       "invalid email",
			body:       map[string]interface{}{"email": "not-an-email", "password": "secret123", "fullName": "Amina"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request data",
		},
		{
			name:       "short password",
			body:       map[string]interface{}{"email": "a@example.com", "password": "123", "fullName": "Amina"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request data",
		},
		{
			name:       "password over 72 characters",
			body:       map[string]interface{}{"email": "a@example.com", "password": strings.Repeat("a", 80), "fullName": "Amina"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request data",
		},
		{
			// 40 characters but 80 bytes
			name:       "password over 72 bytes",
			body:       map[string]interface{}{"email": "a@example.com", "password": strings.Repeat("é", 40), "fullName": "Amina"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Password must be at most 72 bytes",
		},
		{
			name:       "unknown blood group",
			body:       map[string]interface{}{"email": "a@example.com", "password": "secret123", "fullName": "Amina", "bloodGroup": "C+"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid blood group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, users, tokens := setupAccount(t, nil)
			if tt.mock != nil {
				tt.mock(users)
			}

			w := perform(r, http.MethodPost, "/api/auth/register", jsonBody(t, tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			env := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantMsg, env.Message)
			if tt.wantStatus == http.StatusCreated {
				data := decodeData(t, w)
				_, err := tokens.Parse(data["token"].(string))
				assert.NoError(t, err)
				user := data["user"].(map[string]interface{})
				assert.NotContains(t, user, "password")
				assert.Equal(t, "amina@example.com", user["email"])
			}
			if tt.mock == nil {
				users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	stored := &models.User{ID: testUser.ID, Email: "amina@example.com", Password: hash, FullName: "Amina"}

	tests := []struct {
		name       string
		body       map[string]string
		mock       func(users *mocks.MockUserRepository)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success",
			body: map[string]string{"email": "amina@example.com", "password": "secret123"},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "amina@example.com").Return(stored, nil)
			},
			wantStatus: http.StatusOK,
			wantMsg:    "Login successful",
		},
		{
			name: "unknown email",
			body: map[string]string{"email": "nobody@example.com", "password": "secret123"},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperr.NotFound("User not found"))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name: "wrong password",
			body: map[string]string{"email": "amina@example.com", "password": "wrong-password"},
			mock: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "amina@example.com").Return(stored, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "missing password",
			body:       map[string]string{"email": "amina@example.com"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, users, tokens := setupAccount(t, nil)
			if tt.mock != nil {
				tt.mock(users)
			}

			w := perform(r, http.MethodPost, "/api/auth/login", jsonBody(t, tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, w).Message)
			if tt.wantStatus == http.StatusOK {
				data := decodeData(t, w)
				id, err := tokens.Parse(data["token"].(string))
				require.NoError(t, err)
				assert.Equal(t, stored.ID, id)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		key := "own-gemini-key"
		user := &models.User{ID: testUser.ID, Email: testUser.Email, Password: "hash", GeminiAPIKey: &key}
		r, _, _ := setupAccount(t, user)

		w := perform(r, http.MethodGet, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "own-gemini-key", data["geminiApiKey"])
		assert.NotContains(t, data, "password")
	})

	t.Run("anonymous", func(t *testing.T) {
		r, _, _ := setupAccount(t, nil)

		w := perform(r, http.MethodGet, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateProfile_SparsePatch(t *testing.T) {
	r, users, _ := setupAccount(t, testUser)

	var captured models.Patch
	users.On("Update", mock.Anything, testUser.ID, mock.AnythingOfType("models.Patch")).
		Run(func(args mock.Arguments) { captured = args.Get(2).(models.Patch) }).
		Return(testUser, nil)

	w := perform(r, http.MethodPut, "/api/auth/profile",
		jsonBody(t, `{"bloodGroup":"AB+","emergencyContact":null,"allergies":["dust","pollen"],"dateOfBirth":"1990-04-12"}`))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "AB+", captured["blood_group"])
	assert.True(t, captured.Has("emergency_contact"))
	assert.Nil(t, captured["emergency_contact"])
	assert.Equal(t, models.StringList{"dust", "pollen"}, captured["allergies"])
	assert.True(t, captured.Has("date_of_birth"))
	assert.False(t, captured.Has("full_name"))
	assert.False(t, captured.Has("gemini_api_key"))
}

func TestUpdateProfile_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"bad blood group", `{"bloodGroup":"Z"}`, "Invalid blood group"},
		{"blank name", `{"fullName":"  "}`, "Full name cannot be empty"},
		{"null name", `{"fullName":null}`, "Full name cannot be empty"},
		{"bad date", `{"dateOfBirth":"12/04/1990"}`, `invalid date: "12/04/1990"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, users, _ := setupAccount(t, testUser)

			w := perform(r, http.MethodPut, "/api/auth/profile", jsonBody(t, tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeEnvelope(t, w).Message)
			users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
