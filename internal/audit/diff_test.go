package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func baseProduct() *models.Product {
	return &models.Product{
		ProductID:   "p1",
		Name:        "Mate Imperial",
		Description: "calabaza",
		Category:    "mates",
		PriceCents:  150000,
		Currency:    "ARS",
		Stock:       12,
		Images:      []string{"a.jpg"},
	}
}

func TestDiffProduct(t *testing.T) {
	t.Run("changed fields are reported with old and new values", func(t *testing.T) {
		changes := DiffProduct(baseProduct(), &models.ProductUpdate{
			Name:       strPtr("Mate Torpedo"),
			PriceCents: intPtr(175000),
		})

		require.Len(t, changes, 2)
		assert.Contains(t, changes, models.FieldChange{Field: "name", Old: "Mate Imperial", New: "Mate Torpedo"})
		assert.Contains(t, changes, models.FieldChange{Field: "price_cents", Old: "150000", New: "175000"})
	})

	t.Run("fields absent from the update are ignored", func(t *testing.T) {
		changes := DiffProduct(baseProduct(), &models.ProductUpdate{
			Stock: intPtr(5),
		})

		require.Len(t, changes, 1)
		assert.Equal(t, "stock", changes[0].Field)
	})

	t.Run("same value produces no change", func(t *testing.T) {
		changes := DiffProduct(baseProduct(), &models.ProductUpdate{
			Name:     strPtr("Mate Imperial"),
			Currency: strPtr("ARS"),
		})

		assert.Empty(t, changes)
	})

	t.Run("list fields compare by content", func(t *testing.T) {
		changes := DiffProduct(baseProduct(), &models.ProductUpdate{
			Images: []string{"a.jpg", "b.jpg"},
		})

		require.Len(t, changes, 1)
		assert.Equal(t, models.FieldChange{Field: "images", Old: "a.jpg", New: "a.jpg,b.jpg"}, changes[0])
	})

	t.Run("empty update yields no changes", func(t *testing.T) {
		changes := DiffProduct(baseProduct(), &models.ProductUpdate{})
		assert.Empty(t, changes)
	})
}
