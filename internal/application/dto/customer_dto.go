package dto

// CreateCustomerRequest body para POST /api/customers.
// Nombre, condición IVA y ciudad son obligatorios para poder facturarle.
type CreateCustomerRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	TaxCondition string `json:"tax_condition" validate:"required,oneof='Responsable Inscripto' Monotributo 'Consumidor Final' Exento"`
	City         string `json:"city" validate:"required,max=120"`
	TaxID        string `json:"tax_id,omitempty" validate:"omitempty,max=20"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=250"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id (reemplaza todos los campos).
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Name         string `json:"name"`
	TaxCondition string `json:"tax_condition"`
	City         string `json:"city"`
	TaxID        string `json:"tax_id,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
