package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/cache"
	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
)

type mockCartRepository struct {
	m         sync.RWMutex
	cart      *domain.Cart
	getErr    error
	upsertErr error
	deleteErr error
}

func (m *mockCartRepository) GetCart(context.Context, primitive.ObjectID) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.cart == nil {
		return nil, repository.ErrCartNotFound
	}
	return m.cart, nil
}

func (m *mockCartRepository) UpsertCart(_ context.Context, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.cart = cart
	return nil
}

func (m *mockCartRepository) DeleteCart(context.Context, primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if m.cart == nil {
		return repository.ErrCartNotFound
	}
	m.cart = nil
	return nil
}

func (m *mockCartRepository) getCart() *domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.cart
}

type mockProductRepository struct {
	m       sync.RWMutex
	product *domain.Product
	err     error
}

func (m *mockProductRepository) GetProductByID(context.Context, primitive.ObjectID) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.product == nil {
		return nil, repository.ErrProductNotFound
	}
	return m.product, nil
}

type mockCache struct {
	m    sync.RWMutex
	cart *domain.Cart
	err  error
}

func (m *mockCache) Get(context.Context, primitive.ObjectID) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ primitive.ObjectID, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return m.err
}

func (m *mockCache) Delete(context.Context, primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	return m.err
}

func (m *mockCache) getCart() *domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.cart
}

type mockOrderRepository struct {
	m         sync.RWMutex
	orders    map[primitive.ObjectID]*domain.Order
	createErr error
	updateErr error
	listErr   error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) GetOrderByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) GetOrderByPaymentID(_ context.Context, paymentID string) (*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for _, order := range m.orders {
		if order.PaymentResult != nil && order.PaymentResult.ID == paymentID {
			copied := *order
			return &copied, nil
		}
	}
	return nil, repository.ErrPaymentNotFound
}

func (m *mockOrderRepository) ListOrdersByUserID(_ context.Context, userID primitive.ObjectID) ([]*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (m *mockOrderRepository) ListOrders(context.Context) ([]*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.Order
	for _, order := range m.orders {
		result = append(result, order)
	}
	return result, nil
}

func (m *mockOrderRepository) UpdateOrder(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.orders[order.ID]; !ok {
		return repository.ErrOrderNotFound
	}
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepository) getOrder(id primitive.ObjectID) *domain.Order {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.orders[id]
}

type mockUserRepository struct {
	m     sync.RWMutex
	users map[primitive.ObjectID]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[primitive.ObjectID]*domain.User)}
}

func (m *mockUserRepository) GetUserByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type mockCartClearer struct {
	m       sync.Mutex
	cleared []primitive.ObjectID
	err     error
}

func (m *mockCartClearer) ClearCart(_ context.Context, userID primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, userID)
	return nil
}

func (m *mockCartClearer) clearedFor(userID primitive.ObjectID) bool {
	m.m.Lock()
	defer m.m.Unlock()
	for _, id := range m.cleared {
		if id == userID {
			return true
		}
	}
	return false
}
