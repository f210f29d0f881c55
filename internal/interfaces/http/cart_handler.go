package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
)

// CartHandler armado del pedido: cada endpoint devuelve el carrito completo con totales
// y los avisos de cantidades o descuentos ajustados.
type CartHandler struct {
	uc *pedidos.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *pedidos.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir carrito
// @Tags         carts
// @Produce      json
// @Success      201  {object}  dto.CartResponse
// @Router       /api/carts [post]
func (h *CartHandler) Open(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Open(c.Context(), companyID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/carts/:id
func (h *CartHandler) Get(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  La cantidad se redondea a 0.5 y se limita al stock disponible.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del carrito"
// @Param        body  body  dto.AddCartItemRequest  true  "producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/carts/{id}/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItem(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItems POST /api/carts/:id/items/bulk
func (h *CartHandler) AddItems(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.BulkAddCartItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddItems(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem PATCH /api/carts/:id/items/:productId
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateItem(c.Context(), companyID, userID, c.Params("id"), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetUnitPrice PUT /api/carts/:id/items/:productId/price (solo admin o gerente)
func (h *CartHandler) SetUnitPrice(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.SetUnitPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetUnitPrice(c.Context(), companyID, userID, c.Params("id"), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/carts/:id/items/:productId
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.RemoveItem(c.Context(), companyID, userID, c.Params("id"), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetCustomer PUT /api/carts/:id/customer
func (h *CartHandler) SetCustomer(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.SetCartCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetCustomer(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetNotes PUT /api/carts/:id/notes
func (h *CartHandler) SetNotes(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	var in dto.SetCartNotesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetNotes(c.Context(), companyID, userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear DELETE /api/carts/:id
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Clear(c.Context(), companyID, userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FiscalTypes GET /api/carts/:id/fiscal-types?flow=pedido|venta_directa
func (h *CartHandler) FiscalTypes(c *fiber.Ctx) error {
	companyID, userID, ok := identity(c)
	if !ok {
		return nil
	}
	out, err := h.uc.FiscalTypes(c.Context(), companyID, userID, c.Params("id"), c.Query("flow"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
