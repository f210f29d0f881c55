package billing

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// SaleTxRunner ejecuta el alta de la venta y el cambio de estado del pedido en una transacción.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
