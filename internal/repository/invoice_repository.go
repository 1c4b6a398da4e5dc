package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

type InvoiceRepository struct {
	collection *mongo.Collection
}

func NewInvoiceRepository(collection *mongo.Collection) *InvoiceRepository {
	return &InvoiceRepository{
		collection: collection,
	}
}

// Create persiste el comprobante; el numerador ya viene asignado
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	invoice.ID = primitive.NewObjectID()
	invoice.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, invoice)
	return err
}

// FindByOrderNumber busca el comprobante de una orden
func (r *InvoiceRepository) FindByOrderNumber(ctx context.Context, orderNumber int64) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var invoice models.Invoice
	err := r.collection.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &invoice, nil
}
