package entity

import (
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain/pricing"
)

// CartSession carrito en armado de un usuario. Tiene un único dueño; se crea al iniciar el
// pedido y se vacía al confirmarlo o cancelarlo.
type CartSession struct {
	ID        string       `json:"id"`
	CompanyID string       `json:"company_id"`
	UserID    string       `json:"user_id"`
	Cart      pricing.Cart `json:"cart"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// OwnedBy indica si la sesión pertenece al usuario de la empresa.
func (s *CartSession) OwnedBy(companyID, userID string) bool {
	return s.CompanyID == companyID && s.UserID == userID
}
