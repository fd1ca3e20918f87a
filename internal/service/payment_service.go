package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuhuraira-73/chromaic-backend/internal/domain"
	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
)

// declinedCardNumber always fails, so the frontend has a deterministic way
// to exercise the decline path.
const declinedCardNumber = "4000000000000002"

var cardNumberPattern = regexp.MustCompile(`^\d{16}$`)

type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Name   string
}

// PaymentReceipt is what the client gets back from a successful charge;
// the stored PaymentResult itself is not echoed.
type PaymentReceipt struct {
	OrderID     primitive.ObjectID `json:"orderId"`
	PaymentID   string             `json:"paymentId"`
	OrderNumber string             `json:"orderNumber"`
}

type PaymentStatus struct {
	PaymentID   string             `json:"paymentId"`
	Status      string             `json:"status"`
	OrderID     primitive.ObjectID `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	PaidAt      *time.Time         `json:"paidAt,omitempty"`
	Amount      float64            `json:"amount"`
}

type PaymentService struct {
	orders repository.OrderRepository
}

func NewPaymentService(orders repository.OrderRepository) *PaymentService {
	return &PaymentService{
		orders: orders,
	}
}

// ProcessPayment runs the dummy charge against an order: ownership and
// paid-state checks, card validation, then a write-once payment result.
func (s *PaymentService) ProcessPayment(ctx context.Context, user *domain.Principal, orderID primitive.ObjectID, card CardDetails) (*PaymentReceipt, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != user.ID {
		return nil, ErrNotOrderPayer
	}

	if order.IsPaid {
		return nil, ErrOrderAlreadyPaid
	}

	if err := validateCreditCard(card.Number); err != nil {
		return nil, err
	}

	paymentID := uuid.NewString()
	now := time.Now()

	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &domain.PaymentResult{
		ID:           paymentID,
		Status:       "COMPLETED",
		UpdateTime:   now.Format(time.RFC3339),
		EmailAddress: user.Email,
		CardLastFour: card.Number[len(card.Number)-4:],
		CardType:     cardType(card.Number),
	}

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		// The raw card number must never end up in the error chain.
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	return &PaymentReceipt{
		OrderID:     order.ID,
		PaymentID:   paymentID,
		OrderNumber: order.OrderNumber,
	}, nil
}

// GetPaymentStatus resolves the order holding the given payment id.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, user *domain.Principal, paymentID string) (*PaymentStatus, error) {
	order, err := s.orders.GetOrderByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if order.UserID != user.ID && !user.IsAdmin {
		return nil, ErrNotPaymentOwner
	}

	return &PaymentStatus{
		PaymentID:   paymentID,
		Status:      order.PaymentResult.Status,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		PaidAt:      order.PaidAt,
		Amount:      order.TotalPrice,
	}, nil
}

func validateCreditCard(number string) error {
	if number == declinedCardNumber {
		return ErrCardDeclined
	}
	if !cardNumberPattern.MatchString(number) {
		return ErrInvalidCardNumber
	}
	return nil
}

// cardType derives the network from the leading digit. No Luhn check, this
// is a dummy gateway.
func cardType(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "Visa"
	case strings.HasPrefix(number, "5"):
		return "MasterCard"
	case strings.HasPrefix(number, "3"):
		return "American Express"
	case strings.HasPrefix(number, "6"):
		return "Discover"
	default:
		return "Unknown"
	}
}
