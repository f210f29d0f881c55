package entity

import "time"

// Customer cliente de la empresa. TaxCondition (condición IVA) define el tipo de comprobante.
type Customer struct {
	ID           string
	CompanyID    string
	Name         string
	TaxID        string // CUIT, CUIL o DNI
	TaxCondition string // "Responsable Inscripto", "Monotributo", "Consumidor Final", "Exento"
	Email        string
	Phone        string
	Address      string
	City         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
