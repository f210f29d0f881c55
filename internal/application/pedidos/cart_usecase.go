package pedidos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/fiscal"
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
	"github.com/jhoicas/Pedidos-api/pkg/money"
)

// CartUseCase casos de uso del carrito en armado. Cada operación carga la sesión, aplica los
// intents con pricing.Reduce y guarda el snapshot resultante.
type CartUseCase struct {
	store        repository.CartStore
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	metrics      ports.Metrics
	log          *logger.Logger
	now          func() time.Time
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(
	store repository.CartStore,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	metrics ports.Metrics,
	log *logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		store:        store,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		metrics:      metrics,
		log:          log,
		now:          time.Now,
	}
}

// Open crea un carrito vacío para el usuario.
func (uc *CartUseCase) Open(ctx context.Context, companyID, userID string) (*dto.CartResponse, error) {
	now := uc.now()
	s := &entity.CartSession{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    userID,
		Cart:      pricing.NewCart(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.store.Save(ctx, s); err != nil {
		return nil, err
	}
	uc.metrics.CartOpened()
	uc.log.Info().Str("cart_id", s.ID).Str("user_id", userID).Msg("carrito abierto")
	return ToCartResponse(s, nil), nil
}

// Get devuelve el carrito con sus totales.
func (uc *CartUseCase) Get(ctx context.Context, companyID, userID, cartID string) (*dto.CartResponse, error) {
	s, err := uc.load(ctx, companyID, userID, cartID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(s, nil), nil
}

// AddItem agrega un producto del catálogo. Si ya estaba, suma la cantidad y la recorta al
// stock disponible con un aviso stock_limit.
func (uc *CartUseCase) AddItem(ctx context.Context, companyID, userID, cartID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.product(companyID, in.ProductID)
	if err != nil {
		return nil, err
	}
	return uc.apply(ctx, companyID, userID, cartID, pricing.AddItemIntent{
		Product:  ToPricingProduct(product),
		Quantity: in.Quantity,
	})
}

// AddItems importa varias líneas de una vez. No se unifican por producto y no llevan tope de stock.
func (uc *CartUseCase) AddItems(ctx context.Context, companyID, userID, cartID string, in dto.BulkAddCartItemsRequest) (*dto.CartResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	items := make([]pricing.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.product(companyID, it.ProductID)
		if err != nil {
			return nil, err
		}
		li := pricing.LineItem{
			ProductID:      product.ID,
			Name:           product.Name,
			Unit:           product.UnitMeasure,
			Quantity:       it.Quantity,
			UnitPrice:      product.Price,
			TaxRatePercent: product.TaxRate,
		}
		if it.DiscountPercent != nil {
			li.DiscountPercent = *it.DiscountPercent
		}
		items = append(items, li)
	}
	return uc.apply(ctx, companyID, userID, cartID, pricing.AddItemsIntent{Items: items})
}

// UpdateItem cambia cantidad y/o descuento de una línea.
func (uc *CartUseCase) UpdateItem(ctx context.Context, companyID, userID, cartID, productID string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	var intents []pricing.Intent
	if in.Quantity != nil {
		intents = append(intents, pricing.SetQuantityIntent{ProductID: productID, Quantity: *in.Quantity})
	}
	if in.DiscountPercent != nil {
		intents = append(intents, pricing.SetDiscountPercentIntent{ProductID: productID, Percent: *in.DiscountPercent})
	}
	if len(intents) == 0 {
		return nil, &domain.ValidationError{Fields: []string{"quantity o discount_percent es obligatorio"}}
	}
	return uc.apply(ctx, companyID, userID, cartID, intents...)
}

// SetUnitPrice cambia el precio de una línea. El control de rol lo hace la capa HTTP.
func (uc *CartUseCase) SetUnitPrice(ctx context.Context, companyID, userID, cartID, productID string, in dto.SetUnitPriceRequest) (*dto.CartResponse, error) {
	return uc.apply(ctx, companyID, userID, cartID, pricing.SetUnitPriceIntent{ProductID: productID, Price: in.UnitPrice})
}

// RemoveItem quita una línea (no falla si no estaba).
func (uc *CartUseCase) RemoveItem(ctx context.Context, companyID, userID, cartID, productID string) (*dto.CartResponse, error) {
	return uc.apply(ctx, companyID, userID, cartID, pricing.RemoveItemIntent{ProductID: productID})
}

// SetCustomer selecciona el cliente del pedido; customer_id vacío lo quita.
func (uc *CartUseCase) SetCustomer(ctx context.Context, companyID, userID, cartID string, in dto.SetCartCustomerRequest) (*dto.CartResponse, error) {
	if in.CustomerID == "" {
		return uc.apply(ctx, companyID, userID, cartID, pricing.SetCustomerIntent{})
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
	return uc.apply(ctx, companyID, userID, cartID, pricing.SetCustomerIntent{Customer: &pricing.CustomerRef{
		ID:           customer.ID,
		Name:         customer.Name,
		TaxCondition: customer.TaxCondition,
	}})
}

// SetNotes cambia las observaciones del pedido.
func (uc *CartUseCase) SetNotes(ctx context.Context, companyID, userID, cartID string, in dto.SetCartNotesRequest) (*dto.CartResponse, error) {
	return uc.apply(ctx, companyID, userID, cartID, pricing.SetNotesIntent{Notes: in.Notes})
}

// Clear vacía el carrito (cancelar pedido). La sesión sigue existiendo.
func (uc *CartUseCase) Clear(ctx context.Context, companyID, userID, cartID string) (*dto.CartResponse, error) {
	return uc.apply(ctx, companyID, userID, cartID, pricing.ClearIntent{})
}

// FiscalTypes tipos de comprobante seleccionables para el cliente del carrito según el circuito.
func (uc *CartUseCase) FiscalTypes(ctx context.Context, companyID, userID, cartID, flow string) (*dto.FiscalTypesResponse, error) {
	f, err := parseFlow(flow)
	if err != nil {
		return nil, err
	}
	s, err := uc.load(ctx, companyID, userID, cartID)
	if err != nil {
		return nil, err
	}
	cond := ""
	if s.Cart.Customer != nil {
		cond = s.Cart.Customer.TaxCondition
	}
	types := fiscal.Selectable(f, cond)
	options := make([]string, 0, len(types))
	for _, t := range types {
		options = append(options, string(t))
	}
	return &dto.FiscalTypesResponse{
		Flow:         string(f),
		TaxCondition: cond,
		Default:      string(fiscal.Resolve(f, cond)),
		Options:      options,
	}, nil
}

// PreviewDiscount simula el descuento de cierre sobre el carrito sin guardarlo.
func (uc *CartUseCase) PreviewDiscount(ctx context.Context, companyID, userID string, in dto.DiscountPreviewRequest) (*dto.DiscountPreviewResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	kind, err := pricing.ParseDiscountKind(in.Kind)
	if err != nil {
		return nil, err
	}
	s, err := uc.load(ctx, companyID, userID, in.CartID)
	if err != nil {
		return nil, err
	}
	t := s.Cart.Totals()
	d, err := pricing.ApplyDiscount(kind, in.Value, t.NetSubtotal, t.GrandTotal)
	if err != nil {
		return nil, err
	}
	final := pricing.FinalTotal(t.GrandTotal, d.Committed())
	return &dto.DiscountPreviewResponse{
		Discount: dto.DiscountResponse{
			Kind:           string(d.Kind),
			RawValue:       d.RawValue,
			ComputedAmount: d.ComputedAmount,
		},
		Applied:             d.Applied(),
		GrandTotal:          t.GrandTotal,
		FinalTotal:          final,
		FormattedFinalTotal: money.FormatCurrency(final),
	}, nil
}

// apply carga la sesión, aplica los intents en orden y guarda. Si alguno falla no se guarda nada.
func (uc *CartUseCase) apply(ctx context.Context, companyID, userID, cartID string, intents ...pricing.Intent) (*dto.CartResponse, error) {
	s, err := uc.load(ctx, companyID, userID, cartID)
	if err != nil {
		return nil, err
	}
	cart, adjustments, err := ReduceWithStock(s.Cart, intents)
	if err != nil {
		return nil, err
	}
	for _, adj := range adjustments {
		if !adj.Changed() {
			continue
		}
		uc.metrics.CartAdjusted(adj.Field, string(adj.Reason))
		uc.log.Debug().Str("cart_id", cartID).Str("product_id", adj.ProductID).
			Str("field", adj.Field).Str("reason", string(adj.Reason)).
			Str("requested", adj.Requested.String()).Str("applied", adj.Applied.String()).
			Msg("valor ajustado por el motor")
	}
	s.Cart = cart
	s.UpdatedAt = uc.now()
	if err := uc.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return ToCartResponse(s, adjustments), nil
}

func (uc *CartUseCase) load(ctx context.Context, companyID, userID, cartID string) (*entity.CartSession, error) {
	return loadSession(ctx, uc.store, companyID, userID, cartID)
}

// loadSession devuelve la sesión solo a su dueño.
func loadSession(ctx context.Context, store repository.CartStore, companyID, userID, cartID string) (*entity.CartSession, error) {
	s, err := store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: carrito %s", domain.ErrNotFound, cartID)
	}
	if !s.OwnedBy(companyID, userID) {
		return nil, domain.ErrForbidden
	}
	return s, nil
}

func (uc *CartUseCase) product(companyID, productID string) (*entity.Product, error) {
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

func parseFlow(s string) (fiscal.Flow, error) {
	switch fiscal.Flow(s) {
	case "", fiscal.FlowPedido:
		return fiscal.FlowPedido, nil
	case fiscal.FlowVentaDirecta:
		return fiscal.FlowVentaDirecta, nil
	}
	return "", &domain.ValidationError{Fields: []string{fmt.Sprintf("flow debe ser %s o %s", fiscal.FlowPedido, fiscal.FlowVentaDirecta)}}
}
