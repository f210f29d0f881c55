package pricing

import (
	"github.com/jhoicas/Pedidos-api/internal/domain/fiscal"
	"github.com/shopspring/decimal"
)

// PayloadItem línea tal como viaja al endpoint de alta de pedido/venta.
type PayloadItem struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	BaseSubtotal    decimal.Decimal `json:"base_subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	NetSubtotal     decimal.Decimal `json:"net_subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
}

// Payload snapshot final que se envía de una sola vez al confirmar.
type Payload struct {
	CustomerID       string          `json:"customer_id,omitempty"`
	TaxCondition     string          `json:"tax_condition,omitempty"`
	Items            []PayloadItem   `json:"items"`
	Notes            string          `json:"notes,omitempty"`
	NetSubtotal      decimal.Decimal `json:"net_subtotal"`
	TaxTotal         decimal.Decimal `json:"tax_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Discount         *Discount       `json:"discount,omitempty"`
	FinalTotal       decimal.Decimal `json:"final_total"`
	FiscalType       fiscal.Type     `json:"fiscal_type,omitempty"`
	FundingAccountID string          `json:"funding_account_id,omitempty"`
}

// BuildPayload arma el payload de envío. discount solo se incluye si está aplicado.
func BuildPayload(c Cart, discount *Discount, fiscalType fiscal.Type, fundingAccountID string) Payload {
	items := make([]PayloadItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, PayloadItem{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TaxRatePercent:  it.TaxRatePercent,
			DiscountPercent: it.DiscountPercent,
			BaseSubtotal:    it.BaseSubtotal(),
			DiscountAmount:  it.DiscountAmount(),
			NetSubtotal:     it.NetSubtotal(),
			TaxAmount:       it.TaxAmount(),
		})
	}
	if discount != nil && !discount.Applied() {
		discount = nil
	}
	totals := c.Totals()
	p := Payload{
		Items:            items,
		Notes:            c.Notes,
		NetSubtotal:      totals.NetSubtotal,
		TaxTotal:         totals.TaxTotal,
		GrandTotal:       totals.GrandTotal,
		Discount:         discount,
		FinalTotal:       FinalTotal(totals.GrandTotal, discount),
		FiscalType:       fiscalType,
		FundingAccountID: fundingAccountID,
	}
	if c.Customer != nil {
		p.CustomerID = c.Customer.ID
		p.TaxCondition = c.Customer.TaxCondition
	}
	return p
}

// LineItems reconstruye las líneas del carrito a partir de las líneas del payload.
func LineItems(items []PayloadItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, LineItem{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TaxRatePercent:  it.TaxRatePercent,
			DiscountPercent: it.DiscountPercent,
		})
	}
	return out
}

// RecomputeTotals recalcula los totales solo con cantidad, precio, IVA y descuento de cada
// línea, ignorando los importes derivados que trae el payload.
func RecomputeTotals(items []PayloadItem) Totals {
	return SumTotals(LineItems(items))
}
