package pedidos

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
	"github.com/jhoicas/Pedidos-api/pkg/money"
)

// ToPricingProduct datos del producto que usa el motor al agregar la línea.
func ToPricingProduct(p *entity.Product) pricing.Product {
	return pricing.Product{
		ID:             p.ID,
		Name:           p.Name,
		Unit:           p.UnitMeasure,
		Price:          p.Price,
		TaxRatePercent: p.TaxRate,
		Stock:          p.Stock,
	}
}

// ToCartResponse arma la respuesta con totales calculados y los avisos de la operación.
func ToCartResponse(s *entity.CartSession, adjustments []pricing.Adjustment) *dto.CartResponse {
	c := s.Cart
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ProductID:       it.ProductID,
			Name:            it.Name,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			MaxQuantity:     it.MaxQuantity,
			UnitPrice:       it.UnitPrice,
			TaxRate:         it.TaxRatePercent,
			DiscountPercent: it.DiscountPercent,
			BaseSubtotal:    it.BaseSubtotal(),
			DiscountAmount:  it.DiscountAmount(),
			NetSubtotal:     it.NetSubtotal(),
			TaxAmount:       it.TaxAmount(),
		})
	}
	t := c.Totals()
	out := &dto.CartResponse{
		ID:    s.ID,
		Items: items,
		Notes: c.Notes,
		Totals: dto.CartTotalsResponse{
			BaseSubtotal:  t.BaseSubtotal,
			LineDiscounts: t.LineDiscounts,
			NetSubtotal:   t.NetSubtotal,
			TaxTotal:      t.TaxTotal,
			GrandTotal:    t.GrandTotal,
			Formatted: dto.FormattedTotals{
				NetSubtotal: money.FormatCurrency(t.NetSubtotal),
				TaxTotal:    money.FormatCurrency(t.TaxTotal),
				GrandTotal:  money.FormatCurrency(t.GrandTotal),
			},
		},
		Warnings:  ToWarnings(adjustments),
		UpdatedAt: s.UpdatedAt,
	}
	if c.Customer != nil {
		out.Customer = &dto.CartCustomerResponse{
			ID:           c.Customer.ID,
			Name:         c.Customer.Name,
			TaxCondition: c.Customer.TaxCondition,
		}
	}
	return out
}

// ToWarnings convierte los ajustes con cambios en avisos para el usuario.
func ToWarnings(adjustments []pricing.Adjustment) []dto.CartWarning {
	var out []dto.CartWarning
	for _, a := range adjustments {
		if !a.Changed() {
			continue
		}
		out = append(out, dto.CartWarning{
			ProductID: a.ProductID,
			Field:     a.Field,
			Requested: a.Requested,
			Applied:   a.Applied,
			Reason:    string(a.Reason),
			Message:   warningMessage(a),
		})
	}
	return out
}

func warningMessage(a pricing.Adjustment) string {
	switch a.Reason {
	case pricing.ReasonRounded:
		return fmt.Sprintf("Cantidad redondeada a %s", a.Applied.String())
	case pricing.ReasonBelowMinimum:
		return fmt.Sprintf("La cantidad mínima es %s", pricing.MinQuantity.String())
	case pricing.ReasonStockLimit:
		return fmt.Sprintf("Stock disponible: %s", a.Applied.String())
	}
	switch a.Field {
	case pricing.FieldDiscountPercent:
		return fmt.Sprintf("Descuento ajustado a %s", money.FormatPercent(a.Applied))
	case pricing.FieldUnitPrice:
		return "El precio unitario no puede ser negativo"
	case pricing.FieldNotes:
		return fmt.Sprintf("Observaciones recortadas a %d caracteres", pricing.MaxNotesLength)
	}
	return "Valor ajustado"
}

// DetailsFromPayload líneas a persistir para el pedido o venta parentID.
func DetailsFromPayload(parentID string, items []pricing.PayloadItem) []*entity.LineDetail {
	out := make([]*entity.LineDetail, 0, len(items))
	for _, it := range items {
		out = append(out, &entity.LineDetail{
			ID:              uuid.New().String(),
			ParentID:        parentID,
			ProductID:       it.ProductID,
			Name:            it.Name,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TaxRate:         it.TaxRatePercent,
			DiscountPercent: it.DiscountPercent,
			NetSubtotal:     it.NetSubtotal,
			TaxAmount:       it.TaxAmount,
		})
	}
	return out
}

// LineItemsFromDetails vuelve a armar las líneas del carrito desde un pedido guardado.
// Las líneas guardadas no tienen tope de stock.
func LineItemsFromDetails(details []*entity.LineDetail) []pricing.LineItem {
	out := make([]pricing.LineItem, 0, len(details))
	for _, d := range details {
		out = append(out, pricing.LineItem{
			ProductID:       d.ProductID,
			Name:            d.Name,
			Unit:            d.Unit,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice,
			TaxRatePercent:  d.TaxRate,
			DiscountPercent: d.DiscountPercent,
		})
	}
	return out
}

// ToDetailResponses líneas guardadas para la respuesta.
func ToDetailResponses(details []*entity.LineDetail) []dto.LineDetailResponse {
	out := make([]dto.LineDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, dto.LineDetailResponse{
			ProductID:       d.ProductID,
			Name:            d.Name,
			Unit:            d.Unit,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice,
			TaxRate:         d.TaxRate,
			DiscountPercent: d.DiscountPercent,
			NetSubtotal:     d.NetSubtotal,
			TaxAmount:       d.TaxAmount,
		})
	}
	return out
}
