package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/billing"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
)

// SaleHandler ventas directas.
type SaleHandler struct {
	uc *billing.DirectSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *billing.DirectSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// CreateDirect POST /api/sales/direct
func (h *SaleHandler) CreateDirect(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.DirectSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
