package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de una venta.
const (
	SaleOriginOrder  = "pedido"
	SaleOriginDirect = "venta_directa"
)

// Estado de autorización fiscal. El pedido de CAE lo hace un servicio externo.
const (
	CAEStatusPending      = "PENDIENTE_CAE"
	CAEStatusNotRequested = "SIN_CAE"
)

// Sale venta facturada (a partir de un pedido o directa).
type Sale struct {
	ID               string
	CompanyID        string
	CustomerID       string
	OrderID          string // vacío en venta directa
	UserID           string
	Origin           string
	FiscalType       string // A, B, C, X
	CAEStatus        string
	FundingAccountID string
	Date             time.Time
	NetTotal         decimal.Decimal
	TaxTotal         decimal.Decimal
	GrandTotal       decimal.Decimal
	DiscountKind     string // vacío si no hubo descuento de cierre
	DiscountValue    decimal.Decimal
	DiscountAmount   decimal.Decimal
	FinalTotal       decimal.Decimal
	CreatedAt        time.Time
}
