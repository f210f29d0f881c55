package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
)

// DiscountHandler simulación del descuento de cierre.
type DiscountHandler struct {
	uc *pedidos.CartUseCase
}

// NewDiscountHandler construye el handler.
func NewDiscountHandler(uc *pedidos.CartUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// Preview godoc
// @Summary      Simular descuento de cierre
// @Tags         discounts
// @Produce      json
// @Param        cart_id  query  string  true   "ID del carrito"
// @Param        kind     query  string  true   "fixed | percentOfSubtotal"
// @Param        value    query  number  false  "monto o porcentaje; si no es numérico no se aplica descuento"
// @Success      200  {object}  dto.DiscountPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/discounts/preview [get]
func (h *DiscountHandler) Preview(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	in := dto.DiscountPreviewRequest{
		CartID: c.Query("cart_id"),
		Kind:   c.Query("kind"),
		Value:  dto.ParseDiscountValue(c.Query("value")),
	}
	out, err := h.uc.PreviewDiscount(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
