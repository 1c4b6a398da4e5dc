package models

import "time"

// CartItem es una línea del carrito: un producto y su cantidad
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int64  `json:"quantity" bson:"quantity"`
	Name      string `json:"name" bson:"name"`
}

// Cart es el documento del carrito, identificado por el id del usuario
// (o por "default" para operaciones anónimas)
type Cart struct {
	ID        string     `json:"cart_id" bson:"_id"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// DefaultCartID es el carrito conocido para sesiones anónimas
const DefaultCartID = "default"
