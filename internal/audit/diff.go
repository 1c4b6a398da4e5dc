package audit

import (
	"strconv"
	"strings"

	"storefront/internal/models"
)

// DiffProduct compara un producto almacenado contra una edición parcial
// y devuelve los cambios campo por campo. Solo los campos presentes en
// la edición participan; un campo con el mismo valor no genera cambio
func DiffProduct(old *models.Product, update *models.ProductUpdate) []models.FieldChange {
	var changes []models.FieldChange

	addString := func(field, oldVal string, newVal *string) {
		if newVal != nil && *newVal != oldVal {
			changes = append(changes, models.FieldChange{Field: field, Old: oldVal, New: *newVal})
		}
	}
	addInt := func(field string, oldVal int64, newVal *int64) {
		if newVal != nil && *newVal != oldVal {
			changes = append(changes, models.FieldChange{
				Field: field,
				Old:   strconv.FormatInt(oldVal, 10),
				New:   strconv.FormatInt(*newVal, 10),
			})
		}
	}
	addList := func(field string, oldVal, newVal []string) {
		if newVal == nil {
			return
		}
		oldJoined := strings.Join(oldVal, ",")
		newJoined := strings.Join(newVal, ",")
		if oldJoined != newJoined {
			changes = append(changes, models.FieldChange{Field: field, Old: oldJoined, New: newJoined})
		}
	}

	addString("name", old.Name, update.Name)
	addString("description", old.Description, update.Description)
	addString("category", old.Category, update.Category)
	addInt("price_cents", old.PriceCents, update.PriceCents)
	addString("currency", old.Currency, update.Currency)
	addInt("stock", old.Stock, update.Stock)
	addList("images", old.Images, update.Images)
	addList("videos", old.Videos, update.Videos)

	return changes
}
