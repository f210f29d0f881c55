package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// Las líneas de pedidos y ventas tienen las mismas columnas; solo cambian tabla y FK.

func insertLineDetail(q Querier, table, parentColumn string, d *entity.LineDetail) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, product_id, name, unit, quantity, unit_price, tax_rate, discount_percent, net_subtotal, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, table, parentColumn)
	_, err := q.Exec(context.Background(), query,
		d.ID, d.ParentID, d.ProductID, d.Name, d.Unit, d.Quantity, d.UnitPrice, d.TaxRate,
		d.DiscountPercent, d.NetSubtotal, d.TaxAmount,
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func listLineDetails(q Querier, table, parentColumn, parentID string) ([]*entity.LineDetail, error) {
	query := fmt.Sprintf(`
		SELECT id, %[2]s, product_id, name, unit, quantity, unit_price, tax_rate, discount_percent, net_subtotal, tax_amount
		FROM %[1]s WHERE %[2]s = $1 ORDER BY line_no`, table, parentColumn)
	rows, err := q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []*entity.LineDetail
	for rows.Next() {
		var d entity.LineDetail
		if err := rows.Scan(&d.ID, &d.ParentID, &d.ProductID, &d.Name, &d.Unit, &d.Quantity, &d.UnitPrice,
			&d.TaxRate, &d.DiscountPercent, &d.NetSubtotal, &d.TaxAmount); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
