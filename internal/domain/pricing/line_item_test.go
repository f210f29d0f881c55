package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
)

func TestQuantizeQuantity(t *testing.T) {
	cases := map[string]string{
		"1":    "1",
		"1.2":  "1",
		"1.25": "1.5", // mitad hacia arriba sobre q*2
		"1.74": "1.5",
		"1.75": "2",
		"0.1":  "0",
		"-3":   "-3",
	}
	for in, want := range cases {
		assertDec(t, want, pricing.QuantizeQuantity(d(in)), "entrada %s", in)
	}
}

func TestNewLineItem_RedondeaYLimitaAlStock(t *testing.T) {
	item, adj, err := pricing.NewLineItem(testProduct("p1", "100", "3.7"), d("10"))
	require.NoError(t, err)

	assertDec(t, "3.5", item.Quantity, "el tope es el stock bajado a múltiplo de 0.5")
	assertDec(t, "3.5", item.MaxQuantity)
	assert.Equal(t, pricing.ReasonStockLimit, adj.Reason)
	assert.Equal(t, pricing.DefaultUnit, item.Unit)
	assert.True(t, item.DiscountPercent.IsZero())
}

func TestNewLineItem_SinStock(t *testing.T) {
	_, _, err := pricing.NewLineItem(testProduct("p1", "100", "0.4"), d("1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestLineItem_DerivadosConDescuento(t *testing.T) {
	item, _, err := pricing.NewLineItem(testProduct("p1", "100", "10"), d("2"))
	require.NoError(t, err)
	item, adj := item.WithDiscountPercent(d("10"))
	assert.False(t, adj.Changed())

	assertDec(t, "200", item.BaseSubtotal())
	assertDec(t, "20", item.DiscountAmount())
	assertDec(t, "180", item.NetSubtotal())
	assertDec(t, "37.8", item.TaxAmount())
}

// Propiedad: cualquier cantidad pedida queda múltiplo de 0.5 y >= 0.5.
func TestWithQuantity_SiempreMultiploDeMedio(t *testing.T) {
	item, _, err := pricing.NewLineItem(testProduct("p1", "10", "1000"), d("1"))
	require.NoError(t, err)

	for _, q := range []string{"-10", "-0.3", "0", "0.01", "0.24", "0.26", "0.5", "1.1", "2.49", "7.75", "999.99", "5000"} {
		got, _ := item.WithQuantity(d(q))
		assert.True(t, got.Quantity.GreaterThanOrEqual(pricing.MinQuantity), "q=%s => %s", q, got.Quantity)
		assert.True(t, got.Quantity.Mod(pricing.QuantityStep).IsZero(), "q=%s => %s", q, got.Quantity)
		assert.True(t, got.Quantity.LessThanOrEqual(d("1000")), "q=%s => %s", q, got.Quantity)
	}
}

func TestWithQuantity_NegativoOCeroVaAlMinimo(t *testing.T) {
	item, _, err := pricing.NewLineItem(testProduct("p1", "10", "5"), d("2"))
	require.NoError(t, err)

	got, adj := item.WithQuantity(d("-4"))
	assertDec(t, "0.5", got.Quantity)
	assert.Equal(t, pricing.ReasonBelowMinimum, adj.Reason)
	assertDec(t, "2", item.Quantity, "el snapshot original no cambia")
}

func TestWithDiscountPercent_Limita(t *testing.T) {
	item, _, _ := pricing.NewLineItem(testProduct("p1", "10", "5"), d("1"))

	got, adj := item.WithDiscountPercent(d("150"))
	assertDec(t, "100", got.DiscountPercent)
	assert.Equal(t, pricing.ReasonOutOfRange, adj.Reason)
	assertDec(t, "0", got.NetSubtotal())

	got, _ = item.WithDiscountPercent(d("-5"))
	assertDec(t, "0", got.DiscountPercent)
}

func TestWithUnitPrice_CeroSeAceptaPeroNoValida(t *testing.T) {
	item, _, _ := pricing.NewLineItem(testProduct("p1", "10", "5"), d("1"))

	got, adj := item.WithUnitPrice(d("-3"))
	assertDec(t, "0", got.UnitPrice)
	assert.True(t, adj.Changed())
	assert.ErrorIs(t, got.Validate(), domain.ErrInvalidPrice)

	got, _ = item.WithUnitPrice(d("12.5"))
	assert.NoError(t, got.Validate())
}
