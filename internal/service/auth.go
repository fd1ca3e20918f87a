package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
)

var ErrInvalidToken = errors.New("not authorized, token failed")

// TokenAuthenticator resolves a bearer token to a Principal.
// The token is the user id for now; swap in real JWT validation here
// without touching the middleware or handlers.
type TokenAuthenticator struct {
	users repository.UserRepository
}

func NewTokenAuthenticator(users repository.UserRepository) *TokenAuthenticator {
	return &TokenAuthenticator{users: users}
}

func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	userID, err := primitive.ObjectIDFromHex(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrInvalidToken
	}

	return &domain.Principal{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}
