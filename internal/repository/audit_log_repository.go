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

// AuditLogRepository es un sumidero de solo-inserción: el historial de
// cambios nunca se edita ni se borra
type AuditLogRepository struct {
	collection *mongo.Collection
}

func NewAuditLogRepository(collection *mongo.Collection) *AuditLogRepository {
	return &AuditLogRepository{
		collection: collection,
	}
}

// Append agrega una entrada al historial
func (r *AuditLogRepository) Append(ctx context.Context, entry *models.AuditLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.ID = primitive.NewObjectID()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// List devuelve entradas más recientes primero, con filtro opcional
// por producto
func (r *AuditLogRepository) List(ctx context.Context, productID string, limit int64) ([]*models.AuditLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if productID != "" {
		filter["product_id"] = productID
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.AuditLogEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
