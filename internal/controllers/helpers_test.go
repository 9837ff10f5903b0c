package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"healthmate/internal/controllers"
	"healthmate/internal/logger"
	"healthmate/internal/middleware"
	"healthmate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testUser = &models.User{ID: uuid.MustParse("0b7c5f8e-2a41-4c1e-9f0e-1d2c3b4a5f60"), Email: "amina@example.com", FullName: "Amina Khan"}

func responder() controllers.Responder {
	return controllers.NewResponder(false, logger.NewNop())
}

// newRouter returns an engine whose requests are authenticated as user.
// A nil user leaves the request anonymous.
func newRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.ContextUserKey, user)
			c.Set(middleware.ContextUserIDKey, user.ID)
		}
		c.Next()
	})
	return r
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewBufferString(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func perform(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	return data
}

func ptr[T any](v T) *T { return &v }
