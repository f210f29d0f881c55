package pricing

import (
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultUnit unidad de medida cuando el producto no informa una.
const DefaultUnit = "Unidad"

// Product datos del producto que necesita el motor al momento de agregarlo al carrito.
// Stock es una foto: no se sigue en vivo después de agregar la línea.
type Product struct {
	ID             string
	Name           string
	Unit           string
	Price          decimal.Decimal
	TaxRatePercent decimal.Decimal // IVA en porcentaje, ej. 21
	Stock          decimal.Decimal
}

// LineItem una línea del carrito. Los importes derivados son métodos, no campos.
type LineItem struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	MaxQuantity     decimal.Decimal `json:"max_quantity"` // tope de stock al agregar; 0 = sin tope
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// NewLineItem crea la línea para product con la cantidad pedida redondeada a 0.5 y limitada a
// [0.5, stock]. Devuelve domain.ErrInsufficientStock si no hay al menos media unidad.
func NewLineItem(product Product, requested decimal.Decimal) (LineItem, Adjustment, error) {
	limit := FloorToStep(product.Stock)
	if limit.LessThan(MinQuantity) {
		return LineItem{}, Adjustment{}, fmt.Errorf("%w: %s (disponible %s)", domain.ErrInsufficientStock, product.Name, product.Stock.String())
	}
	unit := product.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	item := LineItem{
		ProductID:       product.ID,
		Name:            product.Name,
		Unit:            unit,
		MaxQuantity:     limit,
		UnitPrice:       decimal.Max(product.Price, decimal.Zero),
		TaxRatePercent:  decimal.Max(product.TaxRatePercent, decimal.Zero),
		DiscountPercent: decimal.Zero,
	}
	item, adj := item.WithQuantity(requested)
	return item, adj, nil
}

// BaseSubtotal cantidad * precio unitario.
func (li LineItem) BaseSubtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// DiscountAmount descuento de la línea sobre BaseSubtotal.
func (li LineItem) DiscountAmount() decimal.Decimal {
	return li.BaseSubtotal().Mul(li.DiscountPercent).Div(hundred)
}

// NetSubtotal BaseSubtotal menos el descuento de la línea.
func (li LineItem) NetSubtotal() decimal.Decimal {
	return li.BaseSubtotal().Sub(li.DiscountAmount())
}

// TaxAmount IVA de la línea sobre el neto.
func (li LineItem) TaxAmount() decimal.Decimal {
	return li.NetSubtotal().Mul(li.TaxRatePercent).Div(hundred)
}

// WithQuantity devuelve la línea con la cantidad normalizada. Nunca queda por debajo de 0.5,
// y si la línea tiene tope de stock no lo supera.
func (li LineItem) WithQuantity(q decimal.Decimal) (LineItem, Adjustment) {
	applied, reason := normalizeQuantity(q, li.MaxQuantity)
	li.Quantity = applied
	return li, Adjustment{ProductID: li.ProductID, Field: FieldQuantity, Requested: q, Applied: applied, Reason: reason}
}

// WithDiscountPercent devuelve la línea con el descuento limitado a [0, 100].
func (li LineItem) WithDiscountPercent(pct decimal.Decimal) (LineItem, Adjustment) {
	applied := clamp(pct, decimal.Zero, hundred)
	li.DiscountPercent = applied
	return li, outOfRange(li.ProductID, FieldDiscountPercent, pct, applied)
}

// WithUnitPrice devuelve la línea con el precio (>= 0). Un precio 0 se acepta aquí y se
// rechaza recién al guardar (Validate). Quién puede cambiar precios lo decide la capa HTTP.
func (li LineItem) WithUnitPrice(price decimal.Decimal) (LineItem, Adjustment) {
	applied := decimal.Max(price, decimal.Zero)
	li.UnitPrice = applied
	return li, outOfRange(li.ProductID, FieldUnitPrice, price, applied)
}

// Validate reglas de guardado: precio unitario mayor a cero.
func (li LineItem) Validate() error {
	if !li.UnitPrice.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPrice, li.Name)
	}
	return nil
}

// normalized aplica todas las reglas de la línea; se usa para líneas que entran por importación.
func (li LineItem) normalized() LineItem {
	if li.Unit == "" {
		li.Unit = DefaultUnit
	}
	if li.MaxQuantity.IsPositive() {
		li.MaxQuantity = FloorToStep(li.MaxQuantity)
	}
	li.TaxRatePercent = decimal.Max(li.TaxRatePercent, decimal.Zero)
	li, _ = li.WithQuantity(li.Quantity)
	li, _ = li.WithDiscountPercent(li.DiscountPercent)
	li, _ = li.WithUnitPrice(li.UnitPrice)
	return li
}

func outOfRange(productID, field string, requested, applied decimal.Decimal) Adjustment {
	adj := Adjustment{ProductID: productID, Field: field, Requested: requested, Applied: applied}
	if !requested.Equal(applied) {
		adj.Reason = ReasonOutOfRange
	}
	return adj
}
