package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem mirrors CartItem minus the description; order lines are copied
// from the submitted cart lines and never change afterwards.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Images    []string           `bson:"images" json:"images"`
	Price     float64            `bson:"price" json:"price"`
	SalePrice float64            `bson:"sale_price" json:"sale_price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
}

type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	Country   string `bson:"country" json:"country"`
	Phone     string `bson:"phone" json:"phone"`
	Email     string `bson:"email" json:"email"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PaymentResult is write-once: set when the order is paid and never mutated.
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
	CardLastFour string `bson:"card_last_four" json:"cardLastFour"`
	CardType     string `bson:"card_type" json:"cardType"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrderNumber     string             `bson:"order_number" json:"order_number"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod   string             `bson:"payment_method" json:"payment_method"`
	PaymentResult   *PaymentResult     `bson:"payment_result,omitempty" json:"payment_result,omitempty"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shipping_price"`
	TaxPrice        float64            `bson:"tax_price" json:"tax_price"`
	GiftWrap        bool               `bson:"gift_wrap" json:"gift_wrap"`
	GiftWrapPrice   float64            `bson:"gift_wrap_price" json:"gift_wrap_price"`
	TotalPrice      float64            `bson:"total_price" json:"total_price"`
	IsPaid          bool               `bson:"is_paid" json:"is_paid"`
	PaidAt          *time.Time         `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
	IsDelivered     bool               `bson:"is_delivered" json:"is_delivered"`
	DeliveredAt     *time.Time         `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
