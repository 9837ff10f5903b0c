package auth

import (
	"context"
	"errors"
	"strings"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNoToken     = apperr.Unauthorized("Access denied. No token provided.")
	ErrBadToken    = apperr.Unauthorized("Invalid token.")
	ErrUnknownUser = apperr.Unauthorized("User not found for token.")
)

// UserLookup is the slice of the user store the verifier depends on.
type UserLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Verifier turns an Authorization header into an existing user. A valid
// token whose user no longer exists is rejected.
type Verifier struct {
	tokens *TokenManager
	users  UserLookup
}

func NewVerifier(tokens *TokenManager, users UserLookup) *Verifier {
	return &Verifier{tokens: tokens, users: users}
}

func (v *Verifier) Verify(ctx context.Context, authorization string) (*models.User, error) {
	raw, ok := BearerToken(authorization)
	if !ok {
		return nil, ErrNoToken
	}

	userID, err := v.tokens.Parse(raw)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthorized, ErrBadToken.Message, err)
	}

	user, err := v.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, apperr.Internal("user lookup failed", err)
	}
	return user, nil
}

// BearerToken extracts the credential from "Bearer <token>".
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
