package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error)
	// ListByCompany filtra por nombre o CUIT cuando search no es vacío.
	ListByCompany(companyID, search string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
