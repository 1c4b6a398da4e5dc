package repository

import "errors"

// Errores que los handlers traducen a códigos HTTP
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrAlreadyPaid       = errors.New("order already paid")
)
