package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidPrice         = errors.New("precio unitario inválido")
	ErrInvalidDiscountKind  = errors.New("tipo de descuento inválido")
	ErrInvalidFiscalType    = errors.New("tipo fiscal inválido")
	ErrFiscalTypeNotAllowed = errors.New("tipo fiscal no permitido para la condición IVA del cliente")
	ErrCAENotAllowed        = errors.New("los comprobantes X no solicitan CAE")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrCustomerRequired     = errors.New("el pedido requiere un cliente")
)

// ValidationError lista de mensajes de validación (campos faltantes o inválidos)
// que se muestran al usuario en el formulario. Es compatible con errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
