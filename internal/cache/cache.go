package cache

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
)

type CartCache interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	Set(ctx context.Context, userID primitive.ObjectID, cart *domain.Cart) error
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

var ErrCacheMiss = errors.New("cache miss")
