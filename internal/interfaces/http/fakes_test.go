package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

type memProducts map[string]*entity.Product

func (m memProducts) GetByID(id string) (*entity.Product, error) { return m[id], nil }

func (m memProducts) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range m {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (m memProducts) ListByCompany(companyID, _ string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m {
		if p.CompanyID == companyID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCustomers map[string]*entity.Customer

func (m memCustomers) Create(c *entity.Customer) error             { m[c.ID] = c; return nil }
func (m memCustomers) GetByID(id string) (*entity.Customer, error) { return m[id], nil }
func (m memCustomers) Update(c *entity.Customer) error             { m[c.ID] = c; return nil }

func (m memCustomers) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	for _, c := range m {
		if c.CompanyID == companyID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (m memCustomers) ListByCompany(companyID, _ string, _, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

// memDB pedidos y ventas en memoria; también hace de runner de transacciones.
type memDB struct {
	mu      sync.Mutex
	seq     int64
	orders  map[string]*entity.Order
	sales   map[string]*entity.Sale
	details map[string][]*entity.LineDetail
}

func newMemDB() *memDB {
	return &memDB{
		orders:  map[string]*entity.Order{},
		sales:   map[string]*entity.Sale{},
		details: map[string][]*entity.LineDetail{},
	}
}

func (db *memDB) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(orderRepo{db})
}

func (db *memDB) RunSale(_ context.Context, fn func(repository.OrderRepository, repository.SaleRepository) error) error {
	return fn(orderRepo{db}, saleRepo{db})
}

func (db *memDB) addDetail(d *entity.LineDetail) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.details[d.ParentID] = append(db.details[d.ParentID], d)
	return nil
}

type orderRepo struct{ db *memDB }

func (r orderRepo) Create(o *entity.Order) error                       { r.db.orders[o.ID] = o; return nil }
func (r orderRepo) CreateDetail(d *entity.LineDetail) error            { return r.db.addDetail(d) }
func (r orderRepo) GetByID(id string) (*entity.Order, error)           { return r.db.orders[id], nil }
func (r orderRepo) GetDetails(id string) ([]*entity.LineDetail, error) { return r.db.details[id], nil }

func (r orderRepo) UpdateStatus(id, from, to string) error {
	o := r.db.orders[id]
	if o == nil {
		return domain.ErrNotFound
	}
	if o.Status != from {
		return domain.ErrConflict
	}
	o.Status = to
	return nil
}

func (r orderRepo) NextNumber(string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.seq++
	return r.db.seq, nil
}

type saleRepo struct{ db *memDB }

func (r saleRepo) Create(s *entity.Sale) error                        { r.db.sales[s.ID] = s; return nil }
func (r saleRepo) CreateDetail(d *entity.LineDetail) error            { return r.db.addDetail(d) }
func (r saleRepo) GetByID(id string) (*entity.Sale, error)            { return r.db.sales[id], nil }
func (r saleRepo) GetDetails(id string) ([]*entity.LineDetail, error) { return r.db.details[id], nil }
