package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, customer_id, user_id, number, date, status, notes, net_total, tax_total, grand_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CompanyID, o.CustomerID, o.UserID, o.Number, o.Date, o.Status, o.Notes,
		o.NetTotal, o.TaxTotal, o.GrandTotal, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea del pedido.
func (r *OrderRepo) CreateDetail(d *entity.LineDetail) error {
	return insertLineDetail(r.q, "order_details", "order_id", d)
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, user_id, number, date, status, notes, net_total, tax_total, grand_total, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.CustomerID, &o.UserID, &o.Number, &o.Date, &o.Status, &o.Notes,
		&o.NetTotal, &o.TaxTotal, &o.GrandTotal, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetDetails líneas del pedido en el orden en que se cargaron.
func (r *OrderRepo) GetDetails(orderID string) ([]*entity.LineDetail, error) {
	return listLineDetails(r.q, "order_details", "order_id", orderID)
}

// UpdateStatus cambia el estado solo si el pedido sigue en fromStatus.
func (r *OrderRepo) UpdateStatus(id, fromStatus, toStatus string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`, id, fromStatus, toStatus)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: el pedido no está %s", domain.ErrConflict, fromStatus)
	}
	return nil
}

// NextNumber incrementa y devuelve el correlativo de pedidos de la empresa.
func (r *OrderRepo) NextNumber(companyID string) (int64, error) {
	query := `
		INSERT INTO order_sequences (company_id, last_number) VALUES ($1, 1)
		ON CONFLICT (company_id) DO UPDATE SET last_number = order_sequences.last_number + 1
		RETURNING last_number`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}
