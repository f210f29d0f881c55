// Package pricing es el motor de precios del pedido: cantidades por línea, IVA por línea,
// descuentos por línea y de cierre, y totales del carrito.
//
// Todas las operaciones son puras: reciben un snapshot inmutable y devuelven uno nuevo.
// Los totales nunca se guardan, se calculan al leerlos.
package pricing

import "github.com/shopspring/decimal"

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)

	// QuantityStep es el paso de cantidad permitido (medias unidades).
	QuantityStep = decimal.RequireFromString("0.5")
	// MinQuantity es la cantidad mínima de una línea.
	MinQuantity = QuantityStep
)

// QuantizeQuantity redondea q al múltiplo de 0.5 más cercano (mitad hacia arriba sobre q*2).
func QuantizeQuantity(q decimal.Decimal) decimal.Decimal {
	return q.Mul(two).Round(0).Div(two)
}

// FloorToStep baja q al múltiplo de 0.5 inmediato inferior. Se usa para el tope de stock,
// así el máximo de una línea sigue siendo un múltiplo válido (stock 3.7 => tope 3.5).
func FloorToStep(q decimal.Decimal) decimal.Decimal {
	return q.Mul(two).Floor().Div(two)
}

// normalizeQuantity aplica redondeo, mínimo y tope. limit cero o negativo significa sin tope.
func normalizeQuantity(q, limit decimal.Decimal) (decimal.Decimal, Reason) {
	out := QuantizeQuantity(q)
	reason := ReasonNone
	if !out.Equal(q) {
		reason = ReasonRounded
	}
	if out.LessThan(MinQuantity) {
		out = MinQuantity
		reason = ReasonBelowMinimum
	}
	if limit.IsPositive() && out.GreaterThan(limit) {
		out = limit
		reason = ReasonStockLimit
	}
	return out, reason
}

// clamp limita v al rango [lo, hi].
func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
