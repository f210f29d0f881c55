package pricing

import "github.com/shopspring/decimal"

// Reason explica por qué el motor ajustó un valor ingresado.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonRounded      Reason = "rounded"       // cantidad llevada al múltiplo de 0.5
	ReasonBelowMinimum Reason = "below_minimum" // cantidad <= 0 llevada a 0.5
	ReasonStockLimit   Reason = "stock_limit"   // cantidad recortada al stock disponible
	ReasonOutOfRange   Reason = "out_of_range"  // porcentaje o precio fuera de rango
)

// Campos que puede ajustar el motor.
const (
	FieldQuantity        = "quantity"
	FieldDiscountPercent = "discount_percent"
	FieldUnitPrice       = "unit_price"
	FieldNotes           = "notes"
)

// Adjustment describe un clamp silencioso. El motor nunca falla por valores fuera de rango:
// los corrige y lo informa aquí para que el llamador muestre la advertencia.
type Adjustment struct {
	ProductID string          `json:"product_id,omitempty"`
	Field     string          `json:"field"`
	Requested decimal.Decimal `json:"requested"`
	Applied   decimal.Decimal `json:"applied"`
	Reason    Reason          `json:"reason"`
}

// Changed indica si el valor aplicado difiere del pedido.
func (a Adjustment) Changed() bool { return a.Reason != ReasonNone }
