package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
// One cart document per user; the service layer does read-modify-write
// against the whole document.
type CartRepository interface {
	GetCart(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	UpsertCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID primitive.ObjectID) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	ListOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
}

type ProductRepository interface {
	GetProductByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

type indexer interface {
	CreateIndexes(ctx context.Context) error
}

// CreateIndexes runs index creation on every given repository that maintains
// its own indexes. Called once at startup.
func CreateIndexes(ctx context.Context, repos ...interface{}) error {
	for _, r := range repos {
		ix, ok := r.(indexer)
		if !ok {
			continue
		}
		if err := ix.CreateIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
