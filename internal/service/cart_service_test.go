package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
)

func testProduct(id primitive.ObjectID) *domain.Product {
	return &domain.Product{
		ID:          id,
		Title:       "Linen Shirt",
		Images:      []string{"https://cdn.example.com/shirt.jpg"},
		Price:       49.99,
		SalePrice:   39.99,
		Description: "A linen shirt",
		Stock:       10,
	}
}

func TestGetCart_FromCache(t *testing.T) {
	userID := primitive.NewObjectID()
	cached := &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{
			{ProductID: primitive.NewObjectID(), Quantity: 2},
		},
	}
	mockRepo := &mockCartRepository{getErr: errors.New("repo should not be hit")}
	mockC := &mockCache{cart: cached}

	sut := NewCartService(mockRepo, &mockProductRepository{}, mockC)
	ret, err := sut.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, cached, ret)
}

func TestGetCart_CacheMissFallsBackToRepo(t *testing.T) {
	userID := primitive.NewObjectID()
	stored := &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{
			{ProductID: primitive.NewObjectID(), Quantity: 5},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	mockRepo := &mockCartRepository{cart: stored}
	mockC := &mockCache{}

	sut := NewCartService(mockRepo, &mockProductRepository{}, mockC)
	ret, err := sut.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, stored, ret)
}

func TestGetCart_NoCartReturnsEmpty(t *testing.T) {
	userID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{}
	mockC := &mockCache{}

	sut := NewCartService(mockRepo, &mockProductRepository{}, mockC)
	ret, err := sut.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, ret.UserID)
	assert.Empty(t, ret.Items)
}

func TestAddItem_NewLineAppends(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{}
	mockProducts := &mockProductRepository{product: testProduct(productID)}

	sut := NewCartService(mockRepo, mockProducts, &mockCache{})
	cart, err := sut.AddItem(context.Background(), userID, productID, 2, "Blue", "M")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, "Linen Shirt", item.Name)
	assert.Equal(t, []string{"https://cdn.example.com/shirt.jpg"}, item.Images)
	assert.Equal(t, 49.99, item.Price)
	assert.Equal(t, 39.99, item.SalePrice)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Blue", item.Color)
	assert.Equal(t, "M", item.Size)

	assert.Equal(t, cart, mockRepo.getCart())
}

func TestAddItem_SalePriceDefaultsToPrice(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	product := testProduct(productID)
	product.SalePrice = 0
	mockProducts := &mockProductRepository{product: product}

	sut := NewCartService(&mockCartRepository{}, mockProducts, &mockCache{})
	cart, err := sut.AddItem(context.Background(), userID, productID, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, product.Price, cart.Items[0].SalePrice)
}

func TestAddItem_ExistingLineIncrementsQuantity(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items: []domain.CartItem{
				{ProductID: productID, Quantity: 1, Color: "Blue", Size: "M"},
			},
		},
	}
	mockProducts := &mockProductRepository{product: testProduct(productID)}

	sut := NewCartService(mockRepo, mockProducts, &mockCache{})
	cart, err := sut.AddItem(context.Background(), userID, productID, 3, "Blue", "M")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestAddItem_DifferentVariantIsNewLine(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items: []domain.CartItem{
				{ProductID: productID, Quantity: 1, Color: "Blue", Size: "M"},
			},
		},
	}
	mockProducts := &mockProductRepository{product: testProduct(productID)}

	sut := NewCartService(mockRepo, mockProducts, &mockCache{})
	cart, err := sut.AddItem(context.Background(), userID, productID, 1, "Red", "M")
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItem_DefaultQuantityIsOne(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockProducts := &mockProductRepository{product: testProduct(productID)}

	sut := NewCartService(&mockCartRepository{}, mockProducts, &mockCache{})
	cart, err := sut.AddItem(context.Background(), userID, productID, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItem_ProductNotFound(t *testing.T) {
	sut := NewCartService(&mockCartRepository{}, &mockProductRepository{}, &mockCache{})
	_, err := sut.AddItem(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), 1, "", "")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestAddItem_InvalidatesCache(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockC := &mockCache{cart: &domain.Cart{UserID: userID}}
	mockProducts := &mockProductRepository{product: testProduct(productID)}

	sut := NewCartService(&mockCartRepository{}, mockProducts, mockC)
	_, err := sut.AddItem(context.Background(), userID, productID, 1, "", "")
	require.NoError(t, err)
	assert.Nil(t, mockC.getCart())
}

func TestUpdateQuantity_OverwritesValue(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items:  []domain.CartItem{{ProductID: productID, Quantity: 2}},
		},
	}

	sut := NewCartService(mockRepo, &mockProductRepository{}, &mockCache{})
	cart, err := sut.UpdateQuantity(context.Background(), userID, productID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestUpdateQuantity_NoBoundsCheck(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items:  []domain.CartItem{{ProductID: productID, Quantity: 2}},
		},
	}

	sut := NewCartService(mockRepo, &mockProductRepository{}, &mockCache{})
	cart, err := sut.UpdateQuantity(context.Background(), userID, productID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Items[0].Quantity)
}

func TestUpdateQuantity_ItemNotFound(t *testing.T) {
	userID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{UserID: userID},
	}

	sut := NewCartService(mockRepo, &mockProductRepository{}, &mockCache{})
	_, err := sut.UpdateQuantity(context.Background(), userID, primitive.NewObjectID(), 3)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestRemoveItem_FiltersLine(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items: []domain.CartItem{
				{ProductID: productID, Quantity: 1},
				{ProductID: otherID, Quantity: 2},
			},
		},
	}

	sut := NewCartService(mockRepo, &mockProductRepository{}, &mockCache{})
	cart, err := sut.RemoveItem(context.Background(), userID, productID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, otherID, cart.Items[0].ProductID)
}

func TestRemoveItem_AbsentLineIsNoOp(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{
		cart: &domain.Cart{
			UserID: userID,
			Items:  []domain.CartItem{{ProductID: otherID, Quantity: 2}},
		},
	}

	sut := NewCartService(mockRepo, &mockProductRepository{}, &mockCache{})
	cart, err := sut.RemoveItem(context.Background(), userID, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestClearCart_DeletesAndInvalidates(t *testing.T) {
	userID := primitive.NewObjectID()
	mockRepo := &mockCartRepository{cart: &domain.Cart{UserID: userID}}
	mockC := &mockCache{cart: &domain.Cart{UserID: userID}}

	sut := NewCartService(mockRepo, &mockProductRepository{}, mockC)
	require.NoError(t, sut.ClearCart(context.Background(), userID))
	assert.Nil(t, mockRepo.getCart())
	assert.Nil(t, mockC.getCart())
}

func TestClearCart_MissingCartIsNotAnError(t *testing.T) {
	sut := NewCartService(&mockCartRepository{}, &mockProductRepository{}, &mockCache{})
	assert.NoError(t, sut.ClearCart(context.Background(), primitive.NewObjectID()))
}
