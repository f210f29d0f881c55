package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/billing"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
)

// OrderHandler guardado de pedidos y su facturación.
type OrderHandler struct {
	submitUC  *pedidos.SubmitOrderUseCase
	invoiceUC *billing.InvoiceOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(submitUC *pedidos.SubmitOrderUseCase, invoiceUC *billing.InvoiceOrderUseCase) *OrderHandler {
	return &OrderHandler{submitUC: submitUC, invoiceUC: invoiceUC}
}

// Submit godoc
// @Summary      Guardar pedido
// @Description  Persiste el carrito como pedido PENDIENTE y lo vacía.
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID del carrito"
// @Success      201  {object}  dto.OrderResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/carts/{id}/submit [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.submitUC.Submit(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	companyID, _, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.submitUC.Get(companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Invoice godoc
// @Summary      Facturar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del pedido"
// @Param        body  body  dto.InvoiceOrderRequest  true  "tipo de comprobante y descuento de cierre"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/invoice [post]
func (h *OrderHandler) Invoice(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.InvoiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.invoiceUC.Invoice(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
