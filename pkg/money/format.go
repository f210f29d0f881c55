// Package money formatea importes y porcentajes para mostrar (es-AR).
// El motor de precios trabaja siempre con decimal.Decimal crudo; el formato es solo de salida.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// FormatCurrency devuelve el importe con signo pesos y separadores es-AR, ej. "$1.234.567,5".
// Se muestran hasta dos decimales y ninguno si el importe es entero. No pasa por float64.
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	whole, frac, _ := strings.Cut(amount.StringFixed(2), ".")
	frac = strings.TrimRight(frac, "0")
	out := sign + "$" + groupThousands(whole)
	if frac != "" {
		out += "," + frac
	}
	return out
}

// groupThousands agrupa la parte entera con el separador de miles es-AR. Lo que entra en
// int64 pasa por el printer; más allá se agrupa a mano.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent devuelve el porcentaje con un decimal como máximo, ej. "12.3%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.Round(1).String() + "%"
}
