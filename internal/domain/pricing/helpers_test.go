package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDec compara por valor (3.5 == 3.50).
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "esperado %s, obtenido %s %v", want, got.String(), msgAndArgs)
}

func testProduct(id string, price, stock string) pricing.Product {
	return pricing.Product{
		ID:             id,
		Name:           "Producto " + id,
		Price:          d(price),
		TaxRatePercent: d("21"),
		Stock:          d(stock),
	}
}
