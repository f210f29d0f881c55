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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, sku, name, unit_measure, price, tax_rate, stock, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q              Querier
	defaultTaxRate decimal.Decimal
}

// NewProductRepository construye el adaptador. defaultTaxRate se usa para productos sin alícuota cargada.
func NewProductRepository(q Querier, defaultTaxRate decimal.Decimal) *ProductRepo {
	return &ProductRepo{q: q, defaultTaxRate: defaultTaxRate}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := r.scan(r.q.QueryRow(context.Background(), `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCompanyAndSKU obtiene un producto por empresa y SKU.
func (r *ProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	p, err := r.scan(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE company_id = $1 AND sku = $2`, companyID, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// ListByCompany lista productos activos de la empresa, filtrando por nombre o SKU.
func (r *ProductRepo) ListByCompany(companyID, search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE company_id = $1 AND active
		  AND ($2 = '' OR name ILIKE $2 OR sku ILIKE $2)
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, searchPattern(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scan(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var taxRate decimal.NullDecimal
	if err := row.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.UnitMeasure, &p.Price, &taxRate,
		&p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.TaxRate = r.defaultTaxRate
	if taxRate.Valid {
		p.TaxRate = taxRate.Decimal
	}
	return &p, nil
}
