package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Acciones auditadas sobre productos
const (
	AuditActionCreate     = "create"
	AuditActionUpdate     = "update"
	AuditActionSoftDelete = "soft_delete"
)

// FieldChange es un cambio a nivel de campo dentro de una edición
type FieldChange struct {
	Field string `json:"field" bson:"field"`
	Old   string `json:"old" bson:"old"`
	New   string `json:"new" bson:"new"`
}

// AuditLogEntry es un registro inmutable del historial de cambios de
// productos; solo se agrega, nunca se edita
type AuditLogEntry struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Action    string             `json:"action" bson:"action"`
	ProductID string             `json:"product_id" bson:"product_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	Details   string             `json:"details,omitempty" bson:"details,omitempty"`
	Changes   []FieldChange      `json:"changes,omitempty" bson:"changes,omitempty"`
}
