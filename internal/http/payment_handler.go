package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/service"
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, user *domain.Principal, orderID primitive.ObjectID, card service.CardDetails) (*service.PaymentReceipt, error)
	GetPaymentStatus(ctx context.Context, user *domain.Principal, paymentID string) (*service.PaymentStatus, error)
}

type PaymentHandler struct {
	service PaymentService
	timeout time.Duration
}

func NewPaymentHandler(service PaymentService, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		timeout: timeout,
	}
}

type ProcessPaymentRequestDTO struct {
	OrderID    string `json:"orderId"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CVV        string `json:"cvv"`
	CardName   string `json:"cardName"`
}

type ProcessPaymentResponseDTO struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	OrderID     primitive.ObjectID `json:"orderId"`
	PaymentID   string             `json:"paymentId"`
	OrderNumber string             `json:"orderNumber"`
}

func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.OrderID == "" || req.CardNumber == "" || req.CardExpiry == "" || req.CVV == "" || req.CardName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "Please provide all payment details")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	receipt, err := h.service.ProcessPayment(ctx, principal, orderID, service.CardDetails{
		Number: req.CardNumber,
		Expiry: req.CardExpiry,
		CVV:    req.CVV,
		Name:   req.CardName,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ProcessPaymentResponseDTO{
		Success:     true,
		Message:     "Payment processed successfully",
		OrderID:     receipt.OrderID,
		PaymentID:   receipt.PaymentID,
		OrderNumber: receipt.OrderNumber,
	})
}

func (h *PaymentHandler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	principal := principalFromContext(r.Context())
	if principal == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	paymentID := chi.URLParam(r, "paymentId")

	status, err := h.service.GetPaymentStatus(ctx, principal, paymentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// SimulateFailure always returns the fixed decline payload. Test aid for
// frontend failure handling; nothing is persisted.
func (h *PaymentHandler) SimulateFailure(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Payment failed",
		"error":   "Card declined. Please try another payment method.",
	})
}
