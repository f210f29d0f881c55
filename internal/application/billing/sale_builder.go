package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/fiscal"
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
	"github.com/jhoicas/Pedidos-api/pkg/money"
)

// saleRequest datos comunes a la facturación de pedidos y a la venta directa.
type saleRequest struct {
	companyID        string
	userID           string
	customerID       string
	orderID          string
	taxCondition     string
	flow             fiscal.Flow
	cart             pricing.Cart
	fiscalType       string
	discount         dto.ClosingDiscountRequest
	fundingAccountID string
	requestCAE       bool
}

// buildSale valida tipo de comprobante y carrito, aplica el descuento de cierre y arma la venta
// con sus líneas. No persiste nada.
func buildSale(r saleRequest, now time.Time) (*entity.Sale, []*entity.LineDetail, error) {
	t, err := fiscal.ParseType(r.fiscalType)
	if err != nil {
		return nil, nil, err
	}
	if !fiscal.IsAllowed(r.flow, t, r.taxCondition) {
		return nil, nil, fmt.Errorf("%w: %s no corresponde a %q (usar %s o %s)",
			domain.ErrFiscalTypeNotAllowed, t, r.taxCondition, fiscal.Resolve(r.flow, r.taxCondition), fiscal.TypeX)
	}
	if r.requestCAE && !t.CAEEligible() {
		return nil, nil, domain.ErrCAENotAllowed
	}
	if err := r.cart.ValidateForSubmit(); err != nil {
		return nil, nil, err
	}

	var discount *pricing.Discount
	if r.discount.Kind != "" {
		kind, err := pricing.ParseDiscountKind(r.discount.Kind)
		if err != nil {
			return nil, nil, err
		}
		totals := r.cart.Totals()
		d, err := pricing.ApplyDiscount(kind, r.discount.Value, totals.NetSubtotal, totals.GrandTotal)
		if err != nil {
			return nil, nil, err
		}
		discount = d.Committed()
	}
	payload := pricing.BuildPayload(r.cart, discount, t, r.fundingAccountID)

	origin := entity.SaleOriginOrder
	if r.flow == fiscal.FlowVentaDirecta {
		origin = entity.SaleOriginDirect
	}
	caeStatus := entity.CAEStatusNotRequested
	if r.requestCAE {
		caeStatus = entity.CAEStatusPending
	}
	sale := &entity.Sale{
		ID:               uuid.New().String(),
		CompanyID:        r.companyID,
		CustomerID:       r.customerID,
		OrderID:          r.orderID,
		UserID:           r.userID,
		Origin:           origin,
		FiscalType:       string(payload.FiscalType),
		CAEStatus:        caeStatus,
		FundingAccountID: payload.FundingAccountID,
		Date:             now,
		NetTotal:         payload.NetSubtotal,
		TaxTotal:         payload.TaxTotal,
		GrandTotal:       payload.GrandTotal,
		FinalTotal:       payload.FinalTotal,
		CreatedAt:        now,
	}
	if payload.Discount != nil {
		sale.DiscountKind = string(payload.Discount.Kind)
		sale.DiscountValue = payload.Discount.RawValue
		sale.DiscountAmount = payload.Discount.ComputedAmount
	}
	return sale, pedidos.DetailsFromPayload(sale.ID, payload.Items), nil
}

func toSaleResponse(s *entity.Sale, details []*entity.LineDetail) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:               s.ID,
		Origin:           s.Origin,
		OrderID:          s.OrderID,
		CustomerID:       s.CustomerID,
		FiscalType:       s.FiscalType,
		CAEStatus:        s.CAEStatus,
		FundingAccountID: s.FundingAccountID,
		Date:             s.Date,
		NetTotal:         s.NetTotal,
		TaxTotal:         s.TaxTotal,
		GrandTotal:       s.GrandTotal,
		FinalTotal:       s.FinalTotal,
		FormattedTotal:   money.FormatCurrency(s.FinalTotal),
		Details:          pedidos.ToDetailResponses(details),
	}
	if s.DiscountKind != "" {
		out.Discount = &dto.DiscountResponse{
			Kind:           s.DiscountKind,
			RawValue:       s.DiscountValue,
			ComputedAmount: s.DiscountAmount,
		}
	}
	return out
}
