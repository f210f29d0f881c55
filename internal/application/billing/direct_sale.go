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

// DirectSaleUseCase venta directa sin pedido previo. Usa la tabla fiscal de venta directa.
type DirectSaleUseCase struct {
	txRunner     SaleTxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	metrics      ports.Metrics
	log          *logger.Logger
	now          func() time.Time
}

// NewDirectSaleUseCase construye el caso de uso.
func NewDirectSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	metrics ports.Metrics,
	log *logger.Logger,
) *DirectSaleUseCase {
	return &DirectSaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		metrics:      metrics,
		log:          log,
		now:          time.Now,
	}
}

// Create arma el carrito con las mismas reglas del pedido (redondeo, tope de stock, descuentos)
// y registra la venta. Los ajustes se devuelven como avisos.
func (uc *DirectSaleUseCase) Create(ctx context.Context, companyID, userID string, in dto.DirectSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	cart := pricing.NewCart().WithCustomer(&pricing.CustomerRef{
		ID:           customer.ID,
		Name:         customer.Name,
		TaxCondition: customer.TaxCondition,
	})
	var adjustments []pricing.Adjustment
	for _, it := range in.Items {
		product, err := uc.product(companyID, it.ProductID)
		if err != nil {
			return nil, err
		}
		intents := []pricing.Intent{pricing.AddItemIntent{Product: pedidos.ToPricingProduct(product), Quantity: it.Quantity}}
		if it.DiscountPercent != nil {
			intents = append(intents, pricing.SetDiscountPercentIntent{ProductID: product.ID, Percent: *it.DiscountPercent})
		}
		next, adjs, err := pedidos.ReduceWithStock(cart, intents)
		if err != nil {
			return nil, err
		}
		cart = next
		for _, adj := range adjs {
			if adj.Changed() {
				uc.metrics.CartAdjusted(adj.Field, string(adj.Reason))
			}
		}
		adjustments = append(adjustments, adjs...)
	}
	cart, notesAdj := cart.WithNotes(in.Notes)
	adjustments = append(adjustments, notesAdj)

	now := uc.now()
	sale, details, err := buildSale(saleRequest{
		companyID:        companyID,
		userID:           userID,
		customerID:       customer.ID,
		taxCondition:     customer.TaxCondition,
		flow:             fiscal.FlowVentaDirecta,
		cart:             cart,
		fiscalType:       in.FiscalType,
		discount:         in.Discount,
		fundingAccountID: in.FundingAccountID,
		requestCAE:       in.RequestCAE,
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunSale(ctx, func(_ repository.OrderRepository, saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range details {
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
	uc.log.Info().Str("sale_id", sale.ID).Str("fiscal_type", sale.FiscalType).
		Str("final_total", sale.FinalTotal.String()).Msg("venta directa registrada")

	out := toSaleResponse(sale, details)
	out.Warnings = pedidos.ToWarnings(adjustments)
	return out, nil
}

// Get devuelve una venta de la empresa con su detalle.
func (uc *DirectSaleUseCase) Get(companyID, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	details, err := uc.saleRepo.GetDetails(sale.ID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

func (uc *DirectSaleUseCase) product(companyID, productID string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
