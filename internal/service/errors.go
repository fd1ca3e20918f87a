package service

import "errors"

var (
	// ErrNoOrderItems rejects an order submitted with a present but empty
	// items array. A request without the field at all is let through, same
	// as the frontend has always relied on.
	ErrNoOrderItems = errors.New("no order items")

	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrInvalidStatus    = errors.New("invalid order status")

	ErrNotOrderOwner   = errors.New("not authorized to view this order")
	ErrNotPaymentOwner = errors.New("not authorized to view this payment")
	ErrNotOrderPayer   = errors.New("not authorized to process payment for this order")

	// Card validation outcomes. Messages are part of the API contract.
	ErrCardDeclined      = errors.New("Card declined. Please try another payment method.")
	ErrInvalidCardNumber = errors.New("Invalid card number format")
)
