package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/abuhuraira-73/chromaic-backend/internal/cache"
	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
)

type CartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
	cache    cache.CartCache
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, products repository.ProductRepository, cache cache.CartCache) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		cache:    cache,
	}
}

func (s *CartService) GetCart(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID.Hex(), func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		cart, errGet := s.loadCart(ctx, userID)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), userID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem resolves the product and either bumps the quantity of the matching
// (product, color, size) line or appends a new line snapshotting the product.
func (s *CartService) AddItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int, color, size string) (*domain.Cart, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Matches(productID, color, size) {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		salePrice := product.SalePrice
		if salePrice == 0 {
			salePrice = product.Price
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:   product.ID,
			Name:        product.Title,
			Images:      product.Images,
			Price:       product.Price,
			SalePrice:   salePrice,
			Description: product.Description,
			Quantity:    quantity,
			Color:       color,
			Size:        size,
			AddedAt:     time.Now(),
		})
	}

	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		log.Printf("repo upsert cart error: %v \n", err)
		return nil, err
	}

	invalidateCache(s, userID)
	return cart, nil
}

// UpdateQuantity overwrites the quantity of the line identified by productID.
// No lower bound is enforced on the new quantity.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, repository.ErrItemNotFound
	}

	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		log.Printf("repo upsert cart error: %v \n", err)
		return nil, err
	}

	invalidateCache(s, userID)
	return cart, nil
}

// RemoveItem filters out lines matching productID. Removing a line that is
// not in the cart succeeds and returns the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Cart, error) {
	cart, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		log.Printf("repo upsert cart error: %v \n", err)
		return nil, err
	}

	invalidateCache(s, userID)
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	errDelete := s.repo.DeleteCart(ctx, userID)
	if errDelete != nil && !errors.Is(errDelete, repository.ErrCartNotFound) {
		log.Printf("repo delete cart error: %v \n", errDelete)
		return errDelete
	}

	invalidateCache(s, userID)
	return nil
}

// loadCart returns the stored cart, or a fresh empty one when the user has
// no cart document yet.
func (s *CartService) loadCart(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &domain.Cart{
				UserID:    userID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		return nil, err
	}
	return cart, nil
}

func invalidateCache(s *CartService, userID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errInvalidate := s.cache.Delete(ctx, userID)
	if errInvalidate != nil {
		log.Printf("cache invalidate error: %v \n", errInvalidate)
	}
}
