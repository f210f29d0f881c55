package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Stock es el disponible informado al armar el pedido;
// el motor de precios lo toma como foto al agregar la línea.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	UnitMeasure string          // "Unidad", "Kg", "Caja"...
	Price       decimal.Decimal // precio de venta sin IVA
	TaxRate     decimal.Decimal // IVA en porcentaje: 0, 10.5, 21, 27
	Stock       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
