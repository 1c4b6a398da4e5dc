package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(collection *mongo.Collection) *OrderRepository {
	return &OrderRepository{
		collection: collection,
	}
}

// Create persiste la orden recién creada
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByNumber busca una orden por su número
func (r *OrderRepository) FindByNumber(ctx context.Context, orderNumber int64) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &order, nil
}

// FindByUser lista las órdenes de un usuario, más recientes primero
func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order_number", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkPaid pasa la orden de pendiente a pagada. El filtro exige estado
// pendiente: marcar dos veces la misma orden falla con ErrAlreadyPaid
func (r *OrderRepository) MarkPaid(ctx context.Context, orderNumber int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"order_number": orderNumber, "status": models.OrderStatusPending},
		bson.M{"$set": bson.M{
			"status":  models.OrderStatusPaid,
			"paid_at": now,
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		exists := r.collection.FindOne(ctx, bson.M{"order_number": orderNumber})
		if exists.Err() == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrAlreadyPaid
	}

	return nil
}
