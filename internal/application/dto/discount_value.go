package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDiscountValue lee el valor del descuento de cierre tal como lo tipea el usuario.
// Lo que no es un número cuenta como 0, o sea sin descuento.
func ParseDiscountValue(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// UnmarshalJSON acepta value como número o como texto; un valor ilegible queda en 0.
func (r *ClosingDiscountRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind  string          `json:"kind"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Kind = raw.Kind
	r.Value = decimal.Zero
	if len(raw.Value) > 0 {
		var v decimal.Decimal
		if err := v.UnmarshalJSON(raw.Value); err == nil {
			r.Value = v
		}
	}
	return nil
}
