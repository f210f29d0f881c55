package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// CustomerUseCase alta, edición y búsqueda de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: time.Now}
}

// Create crea un cliente. Nombre, condición IVA y ciudad son obligatorios; el CUIT, si viene,
// no puede repetirse en la empresa.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in = trimCustomer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.TaxID != "" {
		existing, err := uc.repo.GetByCompanyAndTaxID(companyID, in.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := uc.now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCustomer(customer, in)
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(companyID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	in = trimCustomer(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.TaxID != "" && in.TaxID != customer.TaxID {
		existing, err := uc.repo.GetByCompanyAndTaxID(companyID, in.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, domain.ErrDuplicate
		}
	}
	applyCustomer(customer, in)
	customer.UpdatedAt = uc.now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get devuelve un cliente de la empresa.
func (uc *CustomerUseCase) Get(companyID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes de la empresa; search filtra por nombre o CUIT.
func (uc *CustomerUseCase) List(companyID, search string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{
		Items: make([]dto.CustomerResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range list {
		out.Items = append(out.Items, *toCustomerResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) get(companyID, id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func trimCustomer(in dto.CreateCustomerRequest) dto.CreateCustomerRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.TaxCondition = strings.TrimSpace(in.TaxCondition)
	in.City = strings.TrimSpace(in.City)
	in.TaxID = strings.TrimSpace(in.TaxID)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

func applyCustomer(c *entity.Customer, in dto.CreateCustomerRequest) {
	c.Name = in.Name
	c.TaxCondition = in.TaxCondition
	c.City = in.City
	c.TaxID = in.TaxID
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		TaxCondition: c.TaxCondition,
		City:         c.City,
		TaxID:        c.TaxID,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
	}
}
