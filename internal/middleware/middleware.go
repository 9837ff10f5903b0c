package middleware

import (
	"context"
	"errors"
	"net/http"

	"healthmate/internal/apperr"
	"healthmate/internal/auth"
	"healthmate/internal/logger"
	"healthmate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// CredentialVerifier resolves an Authorization header to a stored user.
type CredentialVerifier interface {
	Verify(ctx context.Context, authorization string) (*models.User, error)
}

// AuthMiddleware rejects the request unless the bearer token names an
// existing user. The resolved user is stored on the gin context.
func AuthMiddleware(verifier CredentialVerifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := verifier.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			ae := apperr.From(err)
			status, msg := ae.Status(), ae.Message
			if status >= http.StatusInternalServerError {
				log.Error("Credential check failed", "path", c.Request.URL.Path, "error", err)
				msg = "Something went wrong"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"status":  "error",
				"message": msg,
				"error":   authDetail(err),
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func authDetail(err error) string {
	switch {
	case errors.Is(err, auth.ErrNoToken):
		return "Use format: Bearer {token}"
	case errors.Is(err, auth.ErrBadToken):
		return "Token is malformed, expired or not signed by this server"
	case errors.Is(err, auth.ErrUnknownUser):
		return "Token does not belong to an existing user"
	}
	return "Authentication could not be completed"
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
