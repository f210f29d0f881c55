package dto

import "github.com/shopspring/decimal"

// ProductResponse producto del catálogo para el buscador del pedido.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	UnitMeasure string          `json:"unit_measure"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Stock       decimal.Decimal `json:"stock"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
