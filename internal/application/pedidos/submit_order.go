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
	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

// OrderTxRunner ejecuta el alta del pedido (cabecera, líneas y numeración) en una transacción.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// SubmitOrderUseCase confirma el carrito como pedido.
type SubmitOrderUseCase struct {
	store     repository.CartStore
	txRunner  OrderTxRunner
	orderRepo repository.OrderRepository
	metrics   ports.Metrics
	log       *logger.Logger
	now       func() time.Time
}

// NewSubmitOrderUseCase construye el caso de uso.
func NewSubmitOrderUseCase(
	store repository.CartStore,
	txRunner OrderTxRunner,
	orderRepo repository.OrderRepository,
	metrics ports.Metrics,
	log *logger.Logger,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		store:     store,
		txRunner:  txRunner,
		orderRepo: orderRepo,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Submit guarda el pedido con el snapshot del carrito y recién después lo vacía.
// Si el guardado falla el carrito queda intacto para reintentar.
func (uc *SubmitOrderUseCase) Submit(ctx context.Context, companyID, userID, cartID string) (*dto.OrderResponse, error) {
	s, err := loadSession(ctx, uc.store, companyID, userID, cartID)
	if err != nil {
		return nil, err
	}
	if s.Cart.Customer == nil {
		return nil, domain.ErrCustomerRequired
	}
	if err := s.Cart.ValidateForSubmit(); err != nil {
		return nil, err
	}
	payload := pricing.BuildPayload(s.Cart, nil, "", "")

	now := uc.now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: payload.CustomerID,
		UserID:     userID,
		Date:       now,
		Status:     entity.OrderStatusPending,
		Notes:      payload.Notes,
		NetTotal:   payload.NetSubtotal,
		TaxTotal:   payload.TaxTotal,
		GrandTotal: payload.GrandTotal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	details := DetailsFromPayload(order.ID, payload.Items)

	err = uc.txRunner.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		n, err := orderRepo.NextNumber(companyID)
		if err != nil {
			return err
		}
		order.Number = fmt.Sprintf("P-%08d", n)
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, d := range details {
			if err := orderRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.OrderSubmitted()
	uc.log.Info().Str("order_id", order.ID).Str("number", order.Number).
		Str("grand_total", order.GrandTotal.String()).Msg("pedido guardado")

	s.Cart = s.Cart.Clear()
	s.UpdatedAt = now
	if err := uc.store.Save(ctx, s); err != nil {
		// El pedido ya está guardado; el carrito se puede vaciar a mano.
		uc.log.Warn().Err(err).Str("cart_id", cartID).Msg("no se pudo vaciar el carrito")
	}
	return toOrderResponse(order, details), nil
}

// Get devuelve un pedido de la empresa con su detalle.
func (uc *SubmitOrderUseCase) Get(companyID, orderID string) (*dto.OrderResponse, error) {
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
	details, err := uc.orderRepo.GetDetails(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

func toOrderResponse(o *entity.Order, details []*entity.LineDetail) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		UserID:     o.UserID,
		Status:     o.Status,
		Date:       o.Date,
		Notes:      o.Notes,
		NetTotal:   o.NetTotal,
		TaxTotal:   o.TaxTotal,
		GrandTotal: o.GrandTotal,
		Details:    ToDetailResponses(details),
	}
}
