package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// errorMapping asocia un error de dominio con su respuesta HTTP.
type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrUserNotFound antes que ErrNotFound para no filtrar si el email existe.
var errorMappings = []errorMapping{
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInsufficientStock, fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
	{domain.ErrInvalidPrice, fiber.StatusUnprocessableEntity, "INVALID_PRICE"},
	{domain.ErrEmptyCart, fiber.StatusUnprocessableEntity, "EMPTY_CART"},
	{domain.ErrCustomerRequired, fiber.StatusUnprocessableEntity, "CUSTOMER_REQUIRED"},
	{domain.ErrFiscalTypeNotAllowed, fiber.StatusUnprocessableEntity, "FISCAL_TYPE_NOT_ALLOWED"},
	{domain.ErrCAENotAllowed, fiber.StatusUnprocessableEntity, "CAE_NOT_ALLOWED"},
	{domain.ErrInvalidFiscalType, fiber.StatusBadRequest, "INVALID_FISCAL_TYPE"},
	{domain.ErrInvalidDiscountKind, fiber.StatusBadRequest, "INVALID_DISCOUNT_KIND"},
}

// respondError traduce err a la respuesta JSON estándar. Los errores sin mapeo son 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: strings.Join(ve.Fields, "; ")})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if m.status == fiber.StatusUnauthorized {
				msg = "credenciales inválidas"
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
