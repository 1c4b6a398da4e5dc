package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles de una orden. No existe cancelación:
// una orden pendiente solo puede pasar a pagada.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// OrderItem es la foto de una línea del carrito al momento de crear la orden,
// con el precio unitario vigente al decrementar stock
type OrderItem struct {
	ProductID      string `json:"product_id" bson:"product_id"`
	Name           string `json:"name" bson:"name"`
	Quantity       int64  `json:"quantity" bson:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents" bson:"unit_price_cents"`
}

// Order representa una compra en curso, identificada por su número de orden
// (contador monotónico, distinto del _id interno de Mongo)
type Order struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	OrderNumber int64              `json:"order_number" bson:"order_number"`
	UserID      string             `json:"user_id" bson:"user_id"`
	Items       []OrderItem        `json:"items" bson:"items"`
	TotalCents  int64              `json:"total_cents" bson:"total_cents"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	PaidAt      *time.Time         `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}
