package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductColor struct {
	Name      string `bson:"name" json:"name"`
	ClassName string `bson:"class_name,omitempty" json:"class_name,omitempty"`
	Image     string `bson:"image" json:"image"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Images      []string           `bson:"images" json:"images"`
	Price       float64            `bson:"price" json:"price"`
	SalePrice   float64            `bson:"sale_price" json:"sale_price"`
	Colors      []ProductColor     `bson:"colors" json:"colors"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Description string             `bson:"description" json:"description"`
	Stock       int                `bson:"stock" json:"stock"`
	Category    string             `bson:"category" json:"category"`
	SKU         string             `bson:"sku" json:"sku"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
