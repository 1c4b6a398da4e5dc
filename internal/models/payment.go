package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment es el registro del pago simulado. Solo se inserta, nunca se
// actualiza ni se cancela; la única referencia a la orden es order_number
type Payment struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	OrderNumber   int64              `json:"order_number" bson:"order_number"`
	PaymentMethod string             `json:"payment_method" bson:"payment_method"`
	Installments  int                `json:"installments" bson:"installments"`
	Total         string             `json:"total" bson:"total"`
	IVA           string             `json:"iva" bson:"iva"`
	Items         []OrderItem        `json:"items" bson:"items"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
