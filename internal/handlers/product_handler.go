package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"storefront/internal/audit"
	"storefront/internal/kv"
	"storefront/internal/models"
	"storefront/internal/repository"
)

// ProductHandler sirve el catálogo público y el ABM de admin; las
// mutaciones de admin dejan rastro en el historial de auditoría
type ProductHandler struct {
	repo     *repository.ProductRepository
	auditLog *repository.AuditLogRepository
	cache    *kv.Store
}

func NewProductHandler(repo *repository.ProductRepository, auditLog *repository.AuditLogRepository, cache *kv.Store) *ProductHandler {
	return &ProductHandler{
		repo:     repo,
		auditLog: auditLog,
		cache:    cache,
	}
}

// GetProduct obtiene un producto por ID (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	// Intentar obtener del caché
	if cachedProduct, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cachedProduct)
		return
	}

	// Buscar en DB
	product, err := h.repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get product"})
		return
	}

	// Guardar en caché
	h.cache.Set(cacheKey, product, 5*time.Minute)
	c.JSON(http.StatusOK, product)
}

// ListProducts lista productos con paginación y filtros (con caché)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	category := c.Query("category")
	sortBy := c.DefaultQuery("sort_by", "created_at")
	sortOrder := c.DefaultQuery("sort_order", "desc")
	summary := c.DefaultQuery("summary", "false") == "true"

	cacheKey := fmt.Sprintf(
		"products:list:p%d_s%d_cat:%s_sort:%s_%s_sum:%v",
		page, pageSize, category, sortBy, sortOrder, summary,
	)

	// Buscar en caché
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	// Buscar en base de datos
	products, total, err := h.repo.FindAll(
		c.Request.Context(),
		page,
		pageSize,
		category,
		sortBy,
		sortOrder,
		summary,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list products"})
		return
	}

	response := gin.H{
		"data":      products,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"total_pages": func() int64 {
			if pageSize == 0 {
				return 1
			}
			tp := total / int64(pageSize)
			if total%int64(pageSize) != 0 {
				tp++
			}
			return tp
		}(),
	}

	// Guardar en caché
	h.cache.Set(cacheKey, response, 2*time.Minute)
	c.JSON(http.StatusOK, response)
}

// CreateProduct crea un nuevo producto (admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product

	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create product"})
		return
	}

	h.appendAudit(c, models.AuditActionCreate, product.ProductID, "product created", nil)

	// Invalidar caché de listados
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza parcialmente un producto (admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	var update models.ProductUpdate

	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// El producto previo se necesita para el diff de auditoría
	before, err := h.repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update product"})
		return
	}

	updateMap := bson.M{}
	if update.Name != nil {
		updateMap["name"] = *update.Name
	}
	if update.Description != nil {
		updateMap["description"] = *update.Description
	}
	if update.Category != nil {
		updateMap["category"] = *update.Category
	}
	if update.PriceCents != nil {
		updateMap["price_cents"] = *update.PriceCents
	}
	if update.Currency != nil {
		updateMap["currency"] = *update.Currency
	}
	if update.Stock != nil {
		updateMap["stock"] = *update.Stock
	}
	if update.Images != nil {
		updateMap["images"] = update.Images
	}
	if update.Videos != nil {
		updateMap["videos"] = update.Videos
	}

	if len(updateMap) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), productID, updateMap); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update product"})
		return
	}

	changes := audit.DiffProduct(before, &update)
	h.appendAudit(c, models.AuditActionUpdate, productID, "product updated", changes)

	// Invalidar caché relacionado
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, SuccessResponse{Message: "product updated"})
}

// DeleteProduct realiza un borrado lógico (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.repo.SoftDelete(c.Request.Context(), productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete product"})
		return
	}

	h.appendAudit(c, models.AuditActionSoftDelete, productID, "product soft-deleted", nil)

	// Invalidar caché relacionado
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

// ListAuditLogs lista el historial de cambios (admin)
func (h *ProductHandler) ListAuditLogs(c *gin.Context) {
	productID := c.Query("product_id")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	entries, err := h.auditLog.List(c.Request.Context(), productID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "total": len(entries)})
}

// appendAudit deja el registro inmutable de la mutación. Un fallo acá
// no voltea la operación ya aplicada
func (h *ProductHandler) appendAudit(c *gin.Context, action, productID, details string, changes []models.FieldChange) {
	entry := &models.AuditLogEntry{
		Action:    action,
		ProductID: productID,
		UserID:    c.GetString(ctxUserID),
		Details:   details,
		Changes:   changes,
	}
	if err := h.auditLog.Append(c.Request.Context(), entry); err != nil {
		_ = c.Error(err)
	}
}
