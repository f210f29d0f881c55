package ports

// Metrics puerto de salida para métricas de negocio del flujo de pedidos y ventas.
// La implementación Prometheus vive en infrastructure/metrics; los tests usan NopMetrics.
type Metrics interface {
	CartOpened()
	// CartAdjusted cuenta valores que el motor ajustó (field: quantity, discount_percent...; reason: stock_limit...).
	CartAdjusted(field, reason string)
	OrderSubmitted()
	// SaleCreated origin: pedido | venta_directa; fiscalType: A, B, C, X.
	SaleCreated(origin, fiscalType string)
}

// NopMetrics no registra nada.
type NopMetrics struct{}

func (NopMetrics) CartOpened()              {}
func (NopMetrics) CartAdjusted(_, _ string) {}
func (NopMetrics) OrderSubmitted()          {}
func (NopMetrics) SaleCreated(_, _ string)  {}
