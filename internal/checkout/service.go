package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// Método de pago que aplica recargo
const PaymentMethodCredit = "credit"

// Recargo plano del 15% para pagos con crédito
var creditSurcharge = decimal.NewFromInt(115).Div(decimal.NewFromInt(100))

// Alícuota de IVA incluida en el total (21%), informativa: nunca se suma
var ivaRate = decimal.NewFromInt(21)

// ProductStore es lo que el checkout necesita del catálogo. El descuento
// de stock es atómico en el almacén; el incremento es la compensación
type ProductStore interface {
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	DecrementStock(ctx context.Context, productID string, qty int64) error
	IncrementStock(ctx context.Context, productID string, qty int64) error
}

type CartStore interface {
	Get(ctx context.Context, cartID string) ([]models.CartItem, error)
	Clear(ctx context.Context, cartID string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByNumber(ctx context.Context, orderNumber int64) (*models.Order, error)
	MarkPaid(ctx context.Context, orderNumber int64) error
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
}

type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
}

type Sequencer interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Service implementa el ciclo orden → pago → comprobante
type Service struct {
	products ProductStore
	carts    CartStore
	orders   OrderStore
	payments PaymentStore
	invoices InvoiceStore
	seq      Sequencer
}

func NewService(products ProductStore, carts CartStore, orders OrderStore, payments PaymentStore, invoices InvoiceStore, seq Sequencer) *Service {
	return &Service{
		products: products,
		carts:    carts,
		orders:   orders,
		payments: payments,
		invoices: invoices,
		seq:      seq,
	}
}

// PlaceOrder convierte el carrito en una orden pendiente.
//
// Dos pasadas sobre las mismas líneas: primero se valida stock para
// todas (ninguna línea se toca si alguna no alcanza), después se
// descuenta línea por línea. Si un descuento falla igual (carrera con
// otro pedido), se devuelve el stock ya descontado antes de fallar
func (s *Service) PlaceOrder(ctx context.Context, cartID, userID string) (*models.Order, error) {
	items, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Pasada 1: validar stock y tomar la foto de precios
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if item.Quantity > product.Stock {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrInsufficientStock)
		}
		snapshot = append(snapshot, models.OrderItem{
			ProductID:      product.ProductID,
			Name:           product.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	// Pasada 2: descontar stock, compensando lo ya descontado si algo falla
	for i, item := range snapshot {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.restock(ctx, snapshot[:i])
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrInsufficientStock)
			}
			return nil, fmt.Errorf("decrement stock %s: %w", item.ProductID, err)
		}
	}

	var totalCents int64
	for _, item := range snapshot {
		totalCents += item.Quantity * item.UnitPriceCents
	}

	orderNumber, err := s.seq.Next(ctx, repository.SequenceOrders)
	if err != nil {
		s.restock(ctx, snapshot)
		return nil, fmt.Errorf("allocate order number: %w", err)
	}

	order := &models.Order{
		OrderNumber: orderNumber,
		UserID:      userID,
		Items:       snapshot,
		TotalCents:  totalCents,
		Status:      models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.restock(ctx, snapshot)
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.carts.Clear(ctx, cartID); err != nil {
		// La orden ya existe; un carrito sucio no la invalida
		log.Println("⚠️ could not clear cart", cartID, ":", err)
	}

	return order, nil
}

// restock devuelve el stock de las líneas ya descontadas
func (s *Service) restock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Println("⚠️ restock failed for", item.ProductID, ":", err)
		}
	}
}

// PaymentSummary es lo que se muestra una única vez tras pagar
type PaymentSummary struct {
	OrderNumber   int64              `json:"order_number"`
	InvoiceNumber int64              `json:"invoice_number"`
	PaymentMethod string             `json:"payment_method"`
	Installments  int                `json:"installments"`
	Total         string             `json:"total"`
	IVA           string             `json:"iva"`
	IVACondition  string             `json:"iva_condition"`
	Items         []models.OrderItem `json:"items"`
}

// ProcessPayment registra el pago simulado de una orden pendiente:
// recargo del 15% si el método es crédito, numerador de comprobante,
// pago, comprobante y recién entonces la orden pasa a pagada — el
// registro de pago siempre existe antes del cambio de estado
func (s *Service) ProcessPayment(ctx context.Context, userID string, orderNumber int64, method string, installments int, ivaCondition string) (*PaymentSummary, error) {
	order, err := s.orders.FindByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	// Una orden ajena no se distingue de una inexistente
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrAlreadyPaid
	}

	if installments < 1 {
		installments = 1
	}
	if ivaCondition == "" {
		ivaCondition = "consumidor_final"
	}

	total := decimal.NewFromInt(order.TotalCents).Div(decimal.NewFromInt(100))
	if method == PaymentMethodCredit {
		total = total.Mul(creditSurcharge)
	}
	total = total.Round(2)

	// IVA incluido: total × 21 / 121
	iva := total.Mul(ivaRate).Div(ivaRate.Add(decimal.NewFromInt(100))).Round(2)

	invoiceNumber, err := s.seq.Next(ctx, repository.SequenceInvoices)
	if err != nil {
		return nil, fmt.Errorf("allocate invoice number: %w", err)
	}

	payment := &models.Payment{
		UserID:        userID,
		OrderNumber:   order.OrderNumber,
		PaymentMethod: method,
		Installments:  installments,
		Total:         total.StringFixed(2),
		IVA:           iva.StringFixed(2),
		Items:         order.Items,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	invoice := &models.Invoice{
		InvoiceNumber: invoiceNumber,
		OrderNumber:   order.OrderNumber,
		Total:         total.StringFixed(2),
		IVA:           iva.StringFixed(2),
		IVACondition:  ivaCondition,
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("persist invoice: %w", err)
	}

	if err := s.orders.MarkPaid(ctx, order.OrderNumber); err != nil {
		if errors.Is(err, repository.ErrAlreadyPaid) {
			return nil, ErrAlreadyPaid
		}
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	return &PaymentSummary{
		OrderNumber:   order.OrderNumber,
		InvoiceNumber: invoiceNumber,
		PaymentMethod: method,
		Installments:  installments,
		Total:         total.StringFixed(2),
		IVA:           iva.StringFixed(2),
		IVACondition:  ivaCondition,
		Items:         order.Items,
	}, nil
}
