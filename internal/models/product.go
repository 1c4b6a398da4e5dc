package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto en el catálogo
type Product struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID   string             `json:"product_id" bson:"product_id"`
	SKU         string             `json:"sku" bson:"sku" binding:"required"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category" binding:"required"`
	PriceCents  int64              `json:"price_cents" bson:"price_cents" binding:"required,gt=0"`
	Currency    string             `json:"currency" bson:"currency" binding:"required"`
	Stock       int64              `json:"stock" bson:"stock" binding:"gte=0"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Videos      []string           `json:"videos,omitempty" bson:"videos,omitempty"`
	IsDeleted   bool               `json:"-" bson:"is_deleted"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	PriceCents  *int64   `json:"price_cents,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Stock       *int64   `json:"stock,omitempty"`
	Images      []string `json:"images,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}
