package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/fiscal"
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

// InvoiceOrderUseCase factura un pedido pendiente. Usa la tabla fiscal de pedidos.
type InvoiceOrderUseCase struct {
	txRunner     SaleTxRunner
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	metrics      ports.Metrics
	log          *logger.Logger
	now          func() time.Time
}

// NewInvoiceOrderUseCase construye el caso de uso.
func NewInvoiceOrderUseCase(
	txRunner SaleTxRunner,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	metrics ports.Metrics,
	log *logger.Logger,
) *InvoiceOrderUseCase {
	return &InvoiceOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		metrics:      metrics,
		log:          log,
		now:          time.Now,
	}
}

// Invoice crea la venta a partir del pedido y lo marca FACTURADO en la misma transacción.
func (uc *InvoiceOrderUseCase) Invoice(ctx context.Context, companyID, userID, orderID string, in dto.InvoiceOrderRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if order.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("%w: el pedido %s está %s", domain.ErrConflict, order.Number, order.Status)
	}
	details, err := uc.orderRepo.GetDetails(order.ID)
	if err != nil {
		return nil, err
	}
	taxCondition := ""
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		taxCondition = customer.TaxCondition
	}

	cart := pricing.NewCart().AddItems(pedidos.LineItemsFromDetails(details))
	cart, _ = cart.WithNotes(order.Notes)
	now := uc.now()
	sale, saleDetails, err := buildSale(saleRequest{
		companyID:        companyID,
		userID:           userID,
		customerID:       order.CustomerID,
		orderID:          order.ID,
		taxCondition:     taxCondition,
		flow:             fiscal.FlowPedido,
		cart:             cart,
		fiscalType:       in.FiscalType,
		discount:         in.Discount,
		fundingAccountID: in.FundingAccountID,
		requestCAE:       in.RequestCAE,
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunSale(ctx, func(orderRepo repository.OrderRepository, saleRepo repository.SaleRepository) error {
		// Solo pasa a FACTURADO si sigue PENDIENTE: un pedido se factura una vez.
		if err := orderRepo.UpdateStatus(order.ID, entity.OrderStatusPending, entity.OrderStatusInvoiced); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range saleDetails {
			if err := saleRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.SaleCreated(sale.Origin, sale.FiscalType)
	uc.log.Info().Str("sale_id", sale.ID).Str("order_id", order.ID).Str("fiscal_type", sale.FiscalType).
		Str("final_total", sale.FinalTotal.String()).Msg("pedido facturado")
	return toSaleResponse(sale, saleDetails), nil
}
