package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending   = "PENDIENTE"
	OrderStatusInvoiced  = "FACTURADO"
	OrderStatusCancelled = "CANCELADO"
)

// Order cabecera de un pedido confirmado desde el carrito.
type Order struct {
	ID         string
	CompanyID  string
	CustomerID string
	UserID     string
	Number     string
	Date       time.Time
	Status     string
	Notes      string
	NetTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LineDetail línea de un pedido o de una venta con sus importes ya calculados.
type LineDetail struct {
	ID              string
	ParentID        string // order_id o sale_id
	ProductID       string
	Name            string
	Unit            string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal // porcentaje
	DiscountPercent decimal.Decimal
	NetSubtotal     decimal.Decimal
	TaxAmount       decimal.Decimal
}
