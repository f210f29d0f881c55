package pricing

import (
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DiscountKind estrategia del descuento de cierre (facturación).
type DiscountKind string

const (
	// DiscountFixed importe fijo en pesos.
	DiscountFixed DiscountKind = "fixed"
	// DiscountPercentOfSubtotal porcentaje sobre el subtotal neto (sin IVA).
	DiscountPercentOfSubtotal DiscountKind = "percentOfSubtotal"
)

// ParseDiscountKind valida el tipo recibido desde la API.
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch DiscountKind(s) {
	case DiscountFixed, DiscountPercentOfSubtotal:
		return DiscountKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidDiscountKind, s)
}

// Discount descuento de cierre, distinto del descuento por línea. Se aplica una sola vez
// sobre los totales del carrito.
type Discount struct {
	Kind           DiscountKind    `json:"kind"`
	RawValue       decimal.Decimal `json:"raw_value"`
	ComputedAmount decimal.Decimal `json:"computed_amount"`
}

// ApplyDiscount calcula el importe del descuento. Los valores fuera de rango se recortan:
// fijo a [0, grandTotal], porcentaje a [0, 100] sobre netSubtotal.
// El importe nunca supera grandTotal.
func ApplyDiscount(kind DiscountKind, rawValue, netSubtotal, grandTotal decimal.Decimal) (Discount, error) {
	ceiling := decimal.Max(grandTotal, decimal.Zero)
	var amount decimal.Decimal
	switch kind {
	case DiscountFixed:
		amount = clamp(rawValue, decimal.Zero, ceiling)
	case DiscountPercentOfSubtotal:
		pct := clamp(rawValue, decimal.Zero, hundred)
		amount = decimal.Min(netSubtotal.Mul(pct).Div(hundred), ceiling)
		amount = decimal.Max(amount, decimal.Zero)
	default:
		return Discount{}, fmt.Errorf("%w: %q", domain.ErrInvalidDiscountKind, kind)
	}
	return Discount{Kind: kind, RawValue: rawValue, ComputedAmount: amount}, nil
}

// Applied indica si el descuento debe registrarse. Un valor ingresado <= 0 o un importe
// resultante <= 0 equivale a "sin descuento".
func (d Discount) Applied() bool {
	return d.RawValue.IsPositive() && d.ComputedAmount.IsPositive()
}

// Committed devuelve d solo si está aplicado; si no, nil.
func (d Discount) Committed() *Discount {
	if !d.Applied() {
		return nil
	}
	return &d
}

// FinalTotal total a cobrar después del descuento de cierre (nil = sin descuento).
func FinalTotal(grandTotal decimal.Decimal, d *Discount) decimal.Decimal {
	if d == nil {
		return grandTotal
	}
	return grandTotal.Sub(d.ComputedAmount)
}
