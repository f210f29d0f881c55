package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateDetail(detail *entity.LineDetail) error
	GetByID(id string) (*entity.Order, error)
	GetDetails(orderID string) ([]*entity.LineDetail, error)
	// UpdateStatus cambia el estado; devuelve domain.ErrConflict si el pedido no estaba en fromStatus.
	UpdateStatus(id, fromStatus, toStatus string) error
	// NextNumber número correlativo de pedido por empresa.
	NextNumber(companyID string) (int64, error)
}
