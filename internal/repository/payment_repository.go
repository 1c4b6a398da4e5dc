package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

// PaymentRepository solo inserta y consulta: no existe camino de
// actualización ni de cancelación de pagos
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(collection *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{
		collection: collection,
	}
}

// Create registra el pago
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

// FindByOrderNumber busca el pago de una orden; es la unión débil
// orden-pago por order_number
func (r *PaymentRepository) FindByOrderNumber(ctx context.Context, orderNumber int64) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}
