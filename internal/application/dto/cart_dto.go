package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest body para POST /api/carts/:id/items.
type AddCartItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// BulkCartItem línea importada. Precio, IVA y nombre se toman del catálogo.
type BulkCartItem struct {
	ProductID       string           `json:"product_id" validate:"required"`
	Quantity        decimal.Decimal  `json:"quantity"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
}

// BulkAddCartItemsRequest body para POST /api/carts/:id/items/bulk.
type BulkAddCartItemsRequest struct {
	Items []BulkCartItem `json:"items" validate:"required,min=1,dive"`
}

// UpdateCartItemRequest body para PATCH /api/carts/:id/items/:productId. Al menos un campo.
type UpdateCartItemRequest struct {
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
}

// SetUnitPriceRequest body para PUT /api/carts/:id/items/:productId/price.
type SetUnitPriceRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SetCartCustomerRequest body para PUT /api/carts/:id/customer. customer_id vacío quita el cliente.
type SetCartCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// SetCartNotesRequest body para PUT /api/carts/:id/notes.
type SetCartNotesRequest struct {
	Notes string `json:"notes"`
}

// CartCustomerResponse cliente elegido en el carrito.
type CartCustomerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxCondition string `json:"tax_condition"`
}

// CartItemResponse línea del carrito con importes calculados.
type CartItemResponse struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	MaxQuantity     decimal.Decimal `json:"max_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	BaseSubtotal    decimal.Decimal `json:"base_subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	NetSubtotal     decimal.Decimal `json:"net_subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
}

// FormattedTotals importes listos para mostrar ("$1.234,5").
type FormattedTotals struct {
	NetSubtotal string `json:"net_subtotal"`
	TaxTotal    string `json:"tax_total"`
	GrandTotal  string `json:"grand_total"`
}

// CartTotalsResponse totales del carrito.
type CartTotalsResponse struct {
	BaseSubtotal  decimal.Decimal `json:"base_subtotal"`
	LineDiscounts decimal.Decimal `json:"line_discounts"`
	NetSubtotal   decimal.Decimal `json:"net_subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Formatted     FormattedTotals `json:"formatted"`
}

// CartWarning aviso de un valor que el motor ajustó (cantidad redondeada, tope de stock...).
type CartWarning struct {
	ProductID string          `json:"product_id,omitempty"`
	Field     string          `json:"field"`
	Requested decimal.Decimal `json:"requested"`
	Applied   decimal.Decimal `json:"applied"`
	Reason    string          `json:"reason"`
	Message   string          `json:"message"`
}

// CartResponse estado completo del carrito después de cada operación.
type CartResponse struct {
	ID        string                `json:"id"`
	Customer  *CartCustomerResponse `json:"customer,omitempty"`
	Items     []CartItemResponse    `json:"items"`
	Notes     string                `json:"notes"`
	Totals    CartTotalsResponse    `json:"totals"`
	Warnings  []CartWarning         `json:"warnings,omitempty"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// FiscalTypesResponse tipos de comprobante seleccionables para el cliente del carrito.
type FiscalTypesResponse struct {
	Flow         string   `json:"flow"`
	TaxCondition string   `json:"tax_condition"`
	Default      string   `json:"default"`
	Options      []string `json:"options"`
}

// DiscountPreviewRequest query de GET /api/discounts/preview.
type DiscountPreviewRequest struct {
	CartID string          `query:"cart_id" json:"cart_id" validate:"required"`
	Kind   string          `query:"kind" json:"kind" validate:"required,oneof=fixed percentOfSubtotal"`
	Value  decimal.Decimal `query:"value" json:"value"`
}

// DiscountResponse descuento de cierre aplicado.
type DiscountResponse struct {
	Kind           string          `json:"kind"`
	RawValue       decimal.Decimal `json:"raw_value"`
	ComputedAmount decimal.Decimal `json:"computed_amount"`
}

// DiscountPreviewResponse resultado de simular el descuento sobre el carrito.
type DiscountPreviewResponse struct {
	Discount            DiscountResponse `json:"discount"`
	Applied             bool             `json:"applied"`
	GrandTotal          decimal.Decimal  `json:"grand_total"`
	FinalTotal          decimal.Decimal  `json:"final_total"`
	FormattedFinalTotal string           `json:"formatted_final_total"`
}
