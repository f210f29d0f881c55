package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.LineDetail) error
	GetByID(id string) (*entity.Sale, error)
	GetDetails(saleID string) ([]*entity.LineDetail, error)
}
