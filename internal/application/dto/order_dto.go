package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineDetailResponse línea guardada de un pedido o venta.
type LineDetailResponse struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	NetSubtotal     decimal.Decimal `json:"net_subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
}

// OrderResponse pedido con detalle para GET /api/orders/:id y POST /api/carts/:id/submit.
type OrderResponse struct {
	ID         string               `json:"id"`
	Number     string               `json:"number"`
	CustomerID string               `json:"customer_id"`
	UserID     string               `json:"user_id"`
	Status     string               `json:"status"`
	Date       time.Time            `json:"date"`
	Notes      string               `json:"notes,omitempty"`
	NetTotal   decimal.Decimal      `json:"net_total"`
	TaxTotal   decimal.Decimal      `json:"tax_total"`
	GrandTotal decimal.Decimal      `json:"grand_total"`
	Details    []LineDetailResponse `json:"details"`
}
