package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/repository"
)

type CartHandler struct {
	carts    *repository.CartRepository
	products *repository.ProductRepository
}

func NewCartHandler(carts *repository.CartRepository, products *repository.ProductRepository) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.carts.Get(c.Request.Context(), cartIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load cart"})
		return
	}

	var count int64
	for _, item := range items {
		count += item.Quantity
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": count})
}

// GET /v1/cart/count — el contador del storefront
func (h *CartHandler) GetCount(c *gin.Context) {
	count, err := h.carts.Count(c.Request.Context(), cartIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// POST /v1/cart/items — agrega o suma sobre la línea existente
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// El nombre se copia del catálogo al agregar la línea
	product, err := h.products.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add to cart"})
		return
	}

	if err := h.carts.Add(c.Request.Context(), cartIDFrom(c), product.ProductID, req.Quantity, product.Name); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "item added"})
}

// PATCH /v1/cart/items/:product_id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.carts.UpdateQuantity(c.Request.Context(), cartIDFrom(c), c.Param("product_id"), req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "quantity updated"})
}

// DELETE /v1/cart/items/:product_id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	err := h.carts.Remove(c.Request.Context(), cartIDFrom(c), c.Param("product_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "item removed"})
}

// DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), cartIDFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "cart cleared"})
}
