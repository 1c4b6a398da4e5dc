package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// Estas pruebas necesitan un MongoDB real. Se saltean salvo que
// MONGO_TEST_URI apunte a una instancia disponible, por ejemplo:
//
//	MONGO_TEST_URI=mongodb://localhost:27017 go test ./internal/repository/
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("storefront_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func TestCartMergeIdempotence(t *testing.T) {
	db := testDatabase(t)
	carts := NewCartRepository(db.Collection("carts"))
	ctx := context.Background()

	require.NoError(t, carts.Add(ctx, "u1", "p1", 2, "producto uno"))
	require.NoError(t, carts.Add(ctx, "u1", "p1", 3, "producto uno"))

	items, err := carts.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "same product twice must merge into one line")
	assert.Equal(t, int64(5), items[0].Quantity)
	assert.Equal(t, "producto uno", items[0].Name)
}

func TestCartOperations(t *testing.T) {
	db := testDatabase(t)
	carts := NewCartRepository(db.Collection("carts"))
	ctx := context.Background()

	require.NoError(t, carts.Add(ctx, "u1", "p1", 2, "uno"))
	require.NoError(t, carts.Add(ctx, "u1", "p2", 1, "dos"))

	count, err := carts.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, carts.UpdateQuantity(ctx, "u1", "p1", 7))
	items, err := carts.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, carts.Remove(ctx, "u1", "p2"))
	items, err = carts.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].Quantity)

	require.NoError(t, carts.Clear(ctx, "u1"))
	items, err = carts.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Carrito nunca creado: vacío, no error
	items, err = carts.Get(ctx, "nunca-visto")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, carts.UpdateQuantity(ctx, "u1", "p2", 1), ErrNotFound)
}

func TestDecrementStockIsGuarded(t *testing.T) {
	db := testDatabase(t)
	products := NewProductRepository(db.Collection("products"))
	ctx := context.Background()

	p := &models.Product{
		SKU:        "SKU-1",
		Name:       "Yerba 1kg",
		Category:   "almacen",
		PriceCents: 350000,
		Currency:   "ARS",
		Stock:      5,
	}
	require.NoError(t, products.Create(ctx, p))

	// Descontar dentro del stock disponible
	require.NoError(t, products.DecrementStock(ctx, p.ProductID, 3))

	got, err := products.FindByID(ctx, p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Stock)

	// Descontar más de lo disponible falla y no toca el stock
	err = products.DecrementStock(ctx, p.ProductID, 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	got, err = products.FindByID(ctx, p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Stock)

	// Producto inexistente se distingue del stock insuficiente
	err = products.DecrementStock(ctx, "no-such-product", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// La compensación devuelve el stock
	require.NoError(t, products.IncrementStock(ctx, p.ProductID, 3))
	got, err = products.FindByID(ctx, p.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Stock)
}

func TestSoftDeleteHidesProduct(t *testing.T) {
	db := testDatabase(t)
	products := NewProductRepository(db.Collection("products"))
	ctx := context.Background()

	p := &models.Product{
		SKU:        "SKU-2",
		Name:       "Bombilla",
		Category:   "mates",
		PriceCents: 90000,
		Currency:   "ARS",
		Stock:      3,
	}
	require.NoError(t, products.Create(ctx, p))
	require.NoError(t, products.SoftDelete(ctx, p.ProductID))

	_, err := products.FindByID(ctx, p.ProductID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Un borrado lógico repetido también es not found
	assert.ErrorIs(t, products.SoftDelete(ctx, p.ProductID), ErrNotFound)
}

func TestSequenceIsMonotonic(t *testing.T) {
	db := testDatabase(t)
	sequences := NewSequenceRepository(db.Collection("counters"))
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		n, err := sequences.Next(ctx, SequenceOrders)
		require.NoError(t, err)
		assert.Equal(t, last+1, n)
		last = n
	}

	// Secuencias distintas no se pisan
	n, err := sequences.Next(ctx, SequenceInvoices)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOrderMarkPaid(t *testing.T) {
	db := testDatabase(t)
	orders := NewOrderRepository(db.Collection("orders"))
	ctx := context.Background()

	order := &models.Order{
		OrderNumber: 1,
		UserID:      "u1",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "uno", Quantity: 2, UnitPriceCents: 1000},
		},
		TotalCents: 2000,
		Status:     models.OrderStatusPending,
	}
	require.NoError(t, orders.Create(ctx, order))

	require.NoError(t, orders.MarkPaid(ctx, 1))

	got, err := orders.FindByNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
	assert.NotNil(t, got.PaidAt)

	// El segundo intento falla: la transición es pending → paid una vez
	assert.ErrorIs(t, orders.MarkPaid(ctx, 1), ErrAlreadyPaid)
	assert.ErrorIs(t, orders.MarkPaid(ctx, 99), ErrNotFound)
}
