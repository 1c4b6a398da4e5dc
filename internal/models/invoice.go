package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice es el comprobante fiscal de una orden pagada, con su propio
// numerador monotónico independiente del número de orden
type Invoice struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	InvoiceNumber int64              `json:"invoice_number" bson:"invoice_number"`
	OrderNumber   int64              `json:"order_number" bson:"order_number"`
	Total         string             `json:"total" bson:"total"`
	IVA           string             `json:"iva" bson:"iva"`
	IVACondition  string             `json:"iva_condition" bson:"iva_condition"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
