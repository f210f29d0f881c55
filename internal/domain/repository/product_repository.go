package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	// ListByCompany solo productos activos; search filtra por nombre o SKU.
	ListByCompany(companyID, search string, limit, offset int) ([]*entity.Product, error)
}
