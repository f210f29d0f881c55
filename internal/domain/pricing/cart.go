package pricing

import (
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxNotesLength largo máximo de las observaciones del pedido (en caracteres).
const MaxNotesLength = 500

// CustomerRef cliente seleccionado en el carrito (solo lo que usa el motor).
type CustomerRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxCondition string `json:"tax_condition"` // condición IVA
}

// Cart snapshot inmutable del pedido en armado. Cada operación devuelve un Cart nuevo;
// el original no se modifica.
type Cart struct {
	Customer *CustomerRef `json:"customer,omitempty"`
	Items    []LineItem   `json:"items"`
	Notes    string       `json:"notes"`
}

// Totals importes derivados de un conjunto de líneas.
type Totals struct {
	BaseSubtotal  decimal.Decimal `json:"base_subtotal"`
	LineDiscounts decimal.Decimal `json:"line_discounts"`
	NetSubtotal   decimal.Decimal `json:"net_subtotal"`
	TaxTotal      decimal.Decimal `json:"tax_total"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// NewCart carrito vacío.
func NewCart() Cart {
	return Cart{Items: []LineItem{}}
}

// SumTotals suma las líneas. GrandTotal es siempre NetSubtotal + TaxTotal.
func SumTotals(items []LineItem) Totals {
	t := Totals{
		BaseSubtotal:  decimal.Zero,
		LineDiscounts: decimal.Zero,
		NetSubtotal:   decimal.Zero,
		TaxTotal:      decimal.Zero,
	}
	for _, it := range items {
		t.BaseSubtotal = t.BaseSubtotal.Add(it.BaseSubtotal())
		t.LineDiscounts = t.LineDiscounts.Add(it.DiscountAmount())
		t.NetSubtotal = t.NetSubtotal.Add(it.NetSubtotal())
		t.TaxTotal = t.TaxTotal.Add(it.TaxAmount())
	}
	t.GrandTotal = t.NetSubtotal.Add(t.TaxTotal)
	return t
}

// Totals calcula los totales del carrito al momento de leerlos.
func (c Cart) Totals() Totals { return SumTotals(c.Items) }

// NetSubtotal suma de netos por línea.
func (c Cart) NetSubtotal() decimal.Decimal { return c.Totals().NetSubtotal }

// TaxTotal suma de IVA por línea.
func (c Cart) TaxTotal() decimal.Decimal { return c.Totals().TaxTotal }

// GrandTotal neto + IVA.
func (c Cart) GrandTotal() decimal.Decimal { return c.Totals().GrandTotal }

// IsEmpty indica si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Item devuelve la línea de productID.
func (c Cart) Item(productID string) (LineItem, bool) {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// AddItem agrega product. Si el producto ya está en el carrito suma la cantidad pedida a la
// existente sin volver a limitarla por stock (el llamador controla stock antes de sumar).
// Si no está, crea la línea al final respetando el orden de carga.
func (c Cart) AddItem(product Product, quantity decimal.Decimal) (Cart, Adjustment, error) {
	out := c.clone()
	if i := out.indexOf(product.ID); i >= 0 {
		requested, reason := normalizeQuantity(quantity, decimal.Zero)
		existing := out.Items[i]
		existing.Quantity = existing.Quantity.Add(requested)
		if limit := FloorToStep(product.Stock); limit.IsPositive() {
			existing.MaxQuantity = limit
		}
		out.Items[i] = existing
		adj := Adjustment{ProductID: product.ID, Field: FieldQuantity, Requested: quantity, Applied: requested, Reason: reason}
		return out, adj, nil
	}
	item, adj, err := NewLineItem(product, quantity)
	if err != nil {
		return c, Adjustment{}, err
	}
	out.Items = append(out.Items, item)
	return out, adj, nil
}

// AddItems agrega líneas en bloque (importación). Cada línea se agrega por separado,
// sin unificar por producto; solo se normalizan cantidad, descuento y precio.
func (c Cart) AddItems(items []LineItem) Cart {
	out := c.clone()
	for _, it := range items {
		out.Items = append(out.Items, it.normalized())
	}
	return out
}

// RemoveItem quita la línea de productID. Si no existe no hace nada.
func (c Cart) RemoveItem(productID string) Cart {
	i := c.indexOf(productID)
	if i < 0 {
		return c
	}
	out := c.clone()
	out.Items = append(out.Items[:i], out.Items[i+1:]...)
	return out
}

// UpdateQuantity cambia la cantidad de una línea con las reglas de WithQuantity.
func (c Cart) UpdateQuantity(productID string, quantity decimal.Decimal) (Cart, Adjustment, error) {
	return c.updateItem(productID, func(li LineItem) (LineItem, Adjustment) {
		return li.WithQuantity(quantity)
	})
}

// SetDiscountPercent cambia el descuento porcentual de una línea.
func (c Cart) SetDiscountPercent(productID string, pct decimal.Decimal) (Cart, Adjustment, error) {
	return c.updateItem(productID, func(li LineItem) (LineItem, Adjustment) {
		return li.WithDiscountPercent(pct)
	})
}

// SetUnitPrice cambia el precio unitario de una línea.
func (c Cart) SetUnitPrice(productID string, price decimal.Decimal) (Cart, Adjustment, error) {
	return c.updateItem(productID, func(li LineItem) (LineItem, Adjustment) {
		return li.WithUnitPrice(price)
	})
}

// WithCustomer selecciona (o quita, con nil) el cliente del carrito.
func (c Cart) WithCustomer(customer *CustomerRef) Cart {
	out := c.clone()
	if customer == nil {
		out.Customer = nil
		return out
	}
	cc := *customer
	out.Customer = &cc
	return out
}

// WithNotes cambia las observaciones, recortando a MaxNotesLength caracteres.
func (c Cart) WithNotes(notes string) (Cart, Adjustment) {
	out := c.clone()
	runes := []rune(notes)
	adj := Adjustment{Field: FieldNotes, Requested: decimal.NewFromInt(int64(len(runes)))}
	if len(runes) > MaxNotesLength {
		runes = runes[:MaxNotesLength]
		adj.Reason = ReasonOutOfRange
	}
	adj.Applied = decimal.NewFromInt(int64(len(runes)))
	out.Notes = string(runes)
	return out, adj
}

// Clear vacía el carrito por completo: líneas, cliente y observaciones.
func (c Cart) Clear() Cart {
	return NewCart()
}

// ValidateForSubmit reglas de guardado del pedido: al menos una línea y precios mayores a cero.
func (c Cart) ValidateForSubmit() error {
	if c.IsEmpty() {
		return domain.ErrEmptyCart
	}
	for _, it := range c.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c Cart) updateItem(productID string, fn func(LineItem) (LineItem, Adjustment)) (Cart, Adjustment, error) {
	i := c.indexOf(productID)
	if i < 0 {
		return c, Adjustment{}, fmt.Errorf("%w: producto %s no está en el carrito", domain.ErrNotFound, productID)
	}
	out := c.clone()
	updated, adj := fn(out.Items[i])
	out.Items[i] = updated
	return out, adj, nil
}

func (c Cart) indexOf(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	out := Cart{Notes: c.Notes, Items: make([]LineItem, len(c.Items))}
	copy(out.Items, c.Items)
	if c.Customer != nil {
		cc := *c.Customer
		out.Customer = &cc
	}
	return out
}
