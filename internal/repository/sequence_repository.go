package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepository entrega numeradores monotónicos (órdenes y
// comprobantes) con un contador atómico en la colección counters.
// Nunca reusa números: un fallo posterior a la asignación deja un hueco
type SequenceRepository struct {
	collection *mongo.Collection
}

func NewSequenceRepository(collection *mongo.Collection) *SequenceRepository {
	return &SequenceRepository{
		collection: collection,
	}
}

// Nombres de secuencia conocidos
const (
	SequenceOrders   = "orders"
	SequenceInvoices = "invoices"
)

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// Next incrementa y devuelve el siguiente valor de la secuencia en una
// sola operación sobre el documento contador
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}

	return doc.Seq, nil
}
