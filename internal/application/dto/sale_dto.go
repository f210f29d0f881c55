package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingDiscountRequest descuento de cierre opcional (kind vacío = sin descuento).
type ClosingDiscountRequest struct {
	Kind  string          `json:"kind,omitempty" validate:"omitempty,oneof=fixed percentOfSubtotal"`
	Value decimal.Decimal `json:"value"`
}

// InvoiceOrderRequest body para POST /api/orders/:id/invoice.
type InvoiceOrderRequest struct {
	FiscalType       string                 `json:"fiscal_type" validate:"required"`
	Discount         ClosingDiscountRequest `json:"discount"`
	FundingAccountID string                 `json:"funding_account_id,omitempty"`
	RequestCAE       bool                   `json:"request_cae"`
}

// DirectSaleItem línea de una venta directa.
type DirectSaleItem struct {
	ProductID       string           `json:"product_id" validate:"required"`
	Quantity        decimal.Decimal  `json:"quantity"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
}

// DirectSaleRequest body para POST /api/sales/direct.
type DirectSaleRequest struct {
	CustomerID       string                 `json:"customer_id" validate:"required"`
	Items            []DirectSaleItem       `json:"items" validate:"required,min=1,dive"`
	Notes            string                 `json:"notes,omitempty"`
	FiscalType       string                 `json:"fiscal_type" validate:"required"`
	Discount         ClosingDiscountRequest `json:"discount"`
	FundingAccountID string                 `json:"funding_account_id,omitempty"`
	RequestCAE       bool                   `json:"request_cae"`
}

// SaleResponse venta con detalle.
type SaleResponse struct {
	ID               string               `json:"id"`
	Origin           string               `json:"origin"`
	OrderID          string               `json:"order_id,omitempty"`
	CustomerID       string               `json:"customer_id"`
	FiscalType       string               `json:"fiscal_type"`
	CAEStatus        string               `json:"cae_status"`
	FundingAccountID string               `json:"funding_account_id,omitempty"`
	Date             time.Time            `json:"date"`
	NetTotal         decimal.Decimal      `json:"net_total"`
	TaxTotal         decimal.Decimal      `json:"tax_total"`
	GrandTotal       decimal.Decimal      `json:"grand_total"`
	Discount         *DiscountResponse    `json:"discount,omitempty"`
	FinalTotal       decimal.Decimal      `json:"final_total"`
	FormattedTotal   string               `json:"formatted_total"`
	Warnings         []CartWarning        `json:"warnings,omitempty"`
	Details          []LineDetailResponse `json:"details"`
}
