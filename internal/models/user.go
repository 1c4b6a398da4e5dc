package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles de usuario
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User es la identidad persistida; el hash de contraseña nunca se expone
type User struct {
	ID           primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID       string             `json:"user_id" bson:"user_id"`
	Email        string             `json:"email" bson:"email"`
	Name         string             `json:"name" bson:"name"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Role         string             `json:"role" bson:"role"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}
