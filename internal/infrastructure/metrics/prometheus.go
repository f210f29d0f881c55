// Package metrics implementa ports.Metrics con contadores Prometheus.
package metrics

import (
	"errors"

	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/prometheus/client_golang/prometheus"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus contadores de negocio del flujo de pedidos.
type Prometheus struct {
	cartsOpened     prometheus.Counter
	cartAdjustments *prometheus.CounterVec
	ordersSubmitted prometheus.Counter
	salesCreated    *prometheus.CounterVec
}

// New crea los contadores y los registra en reg (DefaultRegisterer si es nil).
// Si ya estaban registrados reutiliza los existentes.
func New(namespace string, reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Prometheus{
		cartsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carts_opened_total",
			Help:      "Carritos abiertos.",
		}),
		cartAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_adjustments_total",
			Help:      "Valores ajustados por el motor de precios (redondeo, tope de stock, rangos).",
		}, []string{"field", "reason"}),
		ordersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Pedidos confirmados.",
		}),
		salesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_created_total",
			Help:      "Ventas registradas por circuito y tipo de comprobante.",
		}, []string{"origin", "fiscal_type"}),
	}
	m.cartsOpened = register(reg, m.cartsOpened)
	m.cartAdjustments = register(reg, m.cartAdjustments)
	m.ordersSubmitted = register(reg, m.ordersSubmitted)
	m.salesCreated = register(reg, m.salesCreated)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Prometheus) CartOpened() { m.cartsOpened.Inc() }

func (m *Prometheus) CartAdjusted(field, reason string) {
	m.cartAdjustments.WithLabelValues(field, reason).Inc()
}

func (m *Prometheus) OrderSubmitted() { m.ordersSubmitted.Inc() }

func (m *Prometheus) SaleCreated(origin, fiscalType string) {
	m.salesCreated.WithLabelValues(origin, fiscalType).Inc()
}
