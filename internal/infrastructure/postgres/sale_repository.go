package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta. Sin descuento de cierre, las columnas de descuento quedan NULL.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, company_id, customer_id, order_id, user_id, origin, fiscal_type, cae_status, funding_account_id,
			date, net_total, tax_total, grand_total, discount_kind, discount_value, discount_amount, final_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	var value, amount decimal.NullDecimal
	if s.DiscountKind != "" {
		value = decimal.NewNullDecimal(s.DiscountValue)
		amount = decimal.NewNullDecimal(s.DiscountAmount)
	}
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CompanyID, s.CustomerID, nullIfEmpty(s.OrderID), s.UserID, s.Origin, s.FiscalType, s.CAEStatus,
		nullIfEmpty(s.FundingAccountID), s.Date, s.NetTotal, s.TaxTotal, s.GrandTotal,
		nullIfEmpty(s.DiscountKind), value, amount, s.FinalTotal, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la venta.
func (r *SaleRepo) CreateDetail(d *entity.LineDetail) error {
	return insertLineDetail(r.q, "sale_details", "sale_id", d)
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, company_id, customer_id, order_id, user_id, origin, fiscal_type, cae_status, funding_account_id,
			date, net_total, tax_total, grand_total, discount_kind, discount_value, discount_amount, final_total, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var orderID, fundingAccountID, discountKind *string
	var value, amount decimal.NullDecimal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.CustomerID, &orderID, &s.UserID, &s.Origin, &s.FiscalType, &s.CAEStatus,
		&fundingAccountID, &s.Date, &s.NetTotal, &s.TaxTotal, &s.GrandTotal,
		&discountKind, &value, &amount, &s.FinalTotal, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if orderID != nil {
		s.OrderID = *orderID
	}
	if fundingAccountID != nil {
		s.FundingAccountID = *fundingAccountID
	}
	if discountKind != nil {
		s.DiscountKind = *discountKind
		s.DiscountValue = value.Decimal
		s.DiscountAmount = amount.Decimal
	}
	return &s, nil
}

// GetDetails líneas de la venta.
func (r *SaleRepo) GetDetails(saleID string) ([]*entity.LineDetail, error) {
	return listLineDetails(r.q, "sale_details", "sale_id", saleID)
}
