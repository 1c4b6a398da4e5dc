package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{
		collection: collection,
	}
}

// Get devuelve las líneas del carrito; un carrito inexistente es un
// carrito vacío, no un error
func (r *CartRepository) Get(ctx context.Context, cartID string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []models.CartItem{}, nil
		}
		return nil, err
	}

	return cart.Items, nil
}

// Add agrega cantidad a la línea del producto si ya existe, o crea la
// línea (y el carrito) si no: agregar dos veces el mismo producto deja
// una sola línea con la suma de cantidades
func (r *CartRepository) Add(ctx context.Context, cartID, productID string, qty int64, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()

	// Primero intentar sumar sobre la línea existente
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID, "items.product_id": productID},
		bson.M{
			"$inc": bson.M{"items.$.quantity": qty},
			"$set": bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// No había línea: push con upsert crea el carrito si hace falta
	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID},
		bson.M{
			"$push": bson.M{"items": models.CartItem{
				ProductID: productID,
				Quantity:  qty,
				Name:      name,
			}},
			"$set": bson.M{"updated_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// UpdateQuantity fija la cantidad de una línea existente
func (r *CartRepository) UpdateQuantity(ctx context.Context, cartID, productID string, qty int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID, "items.product_id": productID},
		bson.M{
			"$set": bson.M{
				"items.$.quantity": qty,
				"updated_at":       time.Now(),
			},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// Remove quita la línea del producto
func (r *CartRepository) Remove(ctx context.Context, cartID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": productID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// Clear vacía el carrito
func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID},
		bson.M{
			"$set": bson.M{
				"items":      []models.CartItem{},
				"updated_at": time.Now(),
			},
		},
	)
	return err
}

// Count suma las cantidades del carrito, para el contador del storefront
func (r *CartRepository) Count(ctx context.Context, cartID string) (int64, error) {
	items, err := r.Get(ctx, cartID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}
