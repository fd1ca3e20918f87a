package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/service"
)

type OrderService interface {
	CreateOrder(ctx context.Context, user *domain.Principal, input service.CreateOrderInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, user *domain.Principal, orderID primitive.ObjectID) (*domain.Order, error)
	GetMyOrders(ctx context.Context, user *domain.Principal) ([]*domain.Order, error)
	GetOrders(ctx context.Context) ([]*service.OrderWithOwner, error)
	MarkPaid(ctx context.Context, orderID primitive.ObjectID, input service.MarkPaidInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
}

type OrderHandler struct {
	service OrderService
	timeout time.Duration
}

func NewOrderHandler(service OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		service: service,
		timeout: timeout,
	}
}

type OrderItemDTO struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Images    []string `json:"images"`
	Price     float64  `json:"price"`
	SalePrice float64  `json:"sale_price"`
	Quantity  int      `json:"quantity"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
}

type CreateOrderRequestDTO struct {
	Items           []OrderItemDTO         `json:"items"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Subtotal        float64                `json:"subtotal"`
	ShippingPrice   float64                `json:"shipping_price"`
	TaxPrice        float64                `json:"tax_price"`
	GiftWrap        bool                   `json:"gift_wrap"`
	GiftWrapPrice   float64                `json:"gift_wrap_price"`
	TotalPrice      float64                `json:"total_price"`
}

type MarkPaidRequestDTO struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
	CardLastFour string `json:"cardLastFour"`
	CardType     string `json:"cardType"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// nil and [] diverge here on purpose: only a present-but-empty items
	// array is rejected downstream.
	var items []domain.OrderItem
	if req.Items != nil {
		items = make([]domain.OrderItem, 0, len(req.Items))
		for _, dto := range req.Items {
			productID, err := primitive.ObjectIDFromHex(dto.ProductID)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid_product_id", "order item product_id must be a valid id")
				return
			}
			items = append(items, domain.OrderItem{
				ProductID: productID,
				Name:      dto.Name,
				Images:    dto.Images,
				Price:     dto.Price,
				SalePrice: dto.SalePrice,
				Quantity:  dto.Quantity,
				Color:     dto.Color,
				Size:      dto.Size,
			})
		}
	}

	order, err := h.service.CreateOrder(ctx, principal, service.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Subtotal:        req.Subtotal,
		ShippingPrice:   req.ShippingPrice,
		TaxPrice:        req.TaxPrice,
		GiftWrap:        req.GiftWrap,
		GiftWrapPrice:   req.GiftWrapPrice,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable id can never match an order.
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	order, err := h.service.GetOrderByID(ctx, principal, orderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	orders, err := h.service.GetMyOrders(ctx, principal)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.service.GetOrders(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	// The body is optional; every field has a server-side fallback.
	var req MarkPaidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.service.MarkPaid(ctx, orderID, service.MarkPaidInput{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
		CardLastFour: req.CardLastFour,
		CardType:     req.CardType,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.service.UpdateStatus(ctx, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}
