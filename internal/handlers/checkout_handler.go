package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/repository"
	"storefront/internal/session"
)

// CheckoutHandler adapta el ciclo orden → pago → comprobante a HTTP
type CheckoutHandler struct {
	service  *checkout.Service
	orders   *repository.OrderRepository
	payments *repository.PaymentRepository
	invoices *repository.InvoiceRepository
	sessions *session.Store
}

func NewCheckoutHandler(service *checkout.Service, orders *repository.OrderRepository, payments *repository.PaymentRepository, invoices *repository.InvoiceRepository, sessions *session.Store) *CheckoutHandler {
	return &CheckoutHandler{
		service:  service,
		orders:   orders,
		payments: payments,
		invoices: invoices,
		sessions: sessions,
	}
}

type payRequest struct {
	OrderNumber   int64  `json:"order_number" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Installments  int    `json:"installments"`
	IVACondition  string `json:"iva_condition"`
}

// POST /v1/checkout/orders — convierte el carrito del usuario en una
// orden pendiente
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	order, err := h.service.PlaceOrder(c.Request.Context(), userID, userID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
		case errors.Is(err, checkout.ErrInsufficientStock):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "insufficient stock"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// POST /v1/checkout/payments — pago simulado; el resumen queda en la
// sesión para mostrarse una única vez
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID := c.GetString(ctxUserID)

	summary, err := h.service.ProcessPayment(
		c.Request.Context(),
		userID,
		req.OrderNumber,
		req.PaymentMethod,
		req.Installments,
		req.IVACondition,
	)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
		case errors.Is(err, checkout.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "order already paid"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process payment"})
		}
		return
	}

	if token := c.GetString(ctxSessionToken); token != "" {
		if err := h.sessions.StashFlash(token, summary); err != nil {
			_ = c.Error(err)
		}
	}

	c.JSON(http.StatusCreated, summary)
}

// GET /v1/checkout/summary — el resumen del último pago, de un solo
// uso: la segunda lectura devuelve 404
func (h *CheckoutHandler) PaymentSummary(c *gin.Context) {
	token := c.GetString(ctxSessionToken)

	var summary checkout.PaymentSummary
	found, err := h.sessions.PopFlash(token, &summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load summary"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no payment summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /v1/orders — las órdenes del usuario
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.FindByUser(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders, "total": len(orders)})
}

// GET /v1/orders/:number — una orden unida a su pago y comprobante por
// número de orden
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderNumber, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order number"})
		return
	}

	order, err := h.orders.FindByNumber(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get order"})
		return
	}

	if order.UserID != c.GetString(ctxUserID) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
		return
	}

	response := gin.H{"order": order}

	// La unión orden-pago es débil: puede no existir pago todavía
	if payment, err := h.payments.FindByOrderNumber(c.Request.Context(), orderNumber); err == nil {
		response["payment"] = payment
	}
	if invoice, err := h.invoices.FindByOrderNumber(c.Request.Context(), orderNumber); err == nil {
		response["invoice"] = invoice
	}

	c.JSON(http.StatusOK, response)
}
