// Package fiscal resuelve el tipo de comprobante (A/B/C/X) a partir de la condición IVA del cliente.
//
// Hay dos circuitos de facturación con tablas distintas: la facturación de pedidos y la venta
// directa. Las dos se mantienen como variantes con nombre hasta que negocio confirme una sola.
package fiscal

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Pedidos-api/internal/domain"
)

// Type letra del comprobante.
type Type string

const (
	TypeA Type = "A"
	TypeB Type = "B"
	TypeC Type = "C"
	// TypeX comprobante interno, sin CAE. Siempre seleccionable.
	TypeX Type = "X"
)

// Condiciones IVA conocidas.
const (
	CondResponsableInscripto = "Responsable Inscripto"
	CondMonotributo          = "Monotributo"
	CondConsumidorFinal      = "Consumidor Final"
	CondExento               = "Exento"
)

// Flow circuito de facturación.
type Flow string

const (
	FlowPedido       Flow = "pedido"
	FlowVentaDirecta Flow = "venta_directa"
)

// ParseType valida la letra recibida (sin distinguir mayúsculas).
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeA, TypeB, TypeC, TypeX:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidFiscalType, s)
}

// CAEEligible indica si el comprobante puede pedir CAE. X nunca.
func (t Type) CAEEligible() bool { return t != TypeX }

var pedidoTable = map[string]Type{
	normalize(CondResponsableInscripto): TypeA,
	normalize(CondMonotributo):          TypeA,
	normalize(CondConsumidorFinal):      TypeB,
	normalize(CondExento):               TypeB,
}

var ventaDirectaTable = map[string]Type{
	normalize(CondResponsableInscripto): TypeA,
	normalize(CondMonotributo):          TypeB,
	normalize(CondConsumidorFinal):      TypeC,
	normalize(CondExento):               TypeC,
}

// ResolveForPedido tabla de la facturación de pedidos. Sin condición o desconocida => B.
func ResolveForPedido(taxCondition string) Type {
	if t, ok := pedidoTable[normalize(taxCondition)]; ok {
		return t
	}
	return TypeB
}

// ResolveForVentaDirecta tabla de la venta directa. Sin condición o desconocida => C.
func ResolveForVentaDirecta(taxCondition string) Type {
	if t, ok := ventaDirectaTable[normalize(taxCondition)]; ok {
		return t
	}
	return TypeC
}

// Resolve elige la tabla según el circuito. Un circuito desconocido usa la de pedidos.
func Resolve(flow Flow, taxCondition string) Type {
	if flow == FlowVentaDirecta {
		return ResolveForVentaDirecta(taxCondition)
	}
	return ResolveForPedido(taxCondition)
}

// IsAllowed X siempre; cualquier otra letra solo si coincide con la resuelta.
func IsAllowed(flow Flow, t Type, taxCondition string) bool {
	if t == TypeX {
		return true
	}
	return t == Resolve(flow, taxCondition)
}

// Selectable tipos que se ofrecen al usuario: el resuelto y X.
func Selectable(flow Flow, taxCondition string) []Type {
	return []Type{Resolve(flow, taxCondition), TypeX}
}

func normalize(cond string) string {
	return strings.ToLower(strings.Join(strings.Fields(cond), " "))
}
