package pedidos_test

import (
	"context"
	"sync"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListByCompany(companyID, _ string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) ListByCompany(string, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

// fakeOrderRepo pedidos en memoria; también hace de OrderTxRunner.
type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[string]*entity.Order
	details   map[string][]*entity.LineDetail
	seq       int64
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}, details: map[string][]*entity.LineDetail{}}
}

func (r *fakeOrderRepo) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(r)
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) CreateDetail(d *entity.LineDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details[d.ParentID] = append(r.details[d.ParentID], d)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetDetails(orderID string) ([]*entity.LineDetail, error) {
	return r.details[orderID], nil
}

func (r *fakeOrderRepo) UpdateStatus(id, from, to string) error {
	o := r.orders[id]
	if o == nil {
		return domain.ErrNotFound
	}
	if o.Status != from {
		return domain.ErrConflict
	}
	o.Status = to
	return nil
}

func (r *fakeOrderRepo) NextNumber(string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

type countingMetrics struct {
	opened, submitted int
	adjusted          map[string]int
}

func (m *countingMetrics) CartOpened() { m.opened++ }
func (m *countingMetrics) CartAdjusted(field, reason string) {
	if m.adjusted == nil {
		m.adjusted = map[string]int{}
	}
	m.adjusted[field+"/"+reason]++
}
func (m *countingMetrics) OrderSubmitted()         { m.submitted++ }
func (m *countingMetrics) SaleCreated(_, _ string) {}
