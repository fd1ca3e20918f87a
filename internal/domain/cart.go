package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CartItem is a snapshot of the product at add-time. Later product edits do
// not show up in carts that already hold the item.
type CartItem struct {
	ProductID   primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name        string             `bson:"name" json:"name"`
	Images      []string           `bson:"images" json:"images"`
	Price       float64            `bson:"price" json:"price"`
	SalePrice   float64            `bson:"sale_price" json:"sale_price"`
	Description string             `bson:"description" json:"description"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	Size        string             `bson:"size,omitempty" json:"size,omitempty"`
	AddedAt     time.Time          `bson:"added_at" json:"added_at"`
}

// Matches reports whether the line refers to the same product variant.
// (product, color, size) is the uniqueness key within one cart.
func (i CartItem) Matches(productID primitive.ObjectID, color, size string) bool {
	return i.ProductID == productID && i.Color == color && i.Size == size
}
