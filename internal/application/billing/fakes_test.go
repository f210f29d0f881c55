package billing_test

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListByCompany(string, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(list ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range list {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.customers[id], nil }

func (r *fakeCustomerRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) ListByCompany(companyID, _ string, _, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	details map[string][]*entity.LineDetail
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) CreateDetail(d *entity.LineDetail) error {
	r.details[d.ParentID] = append(r.details[d.ParentID], d)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }

func (r *fakeOrderRepo) GetDetails(id string) ([]*entity.LineDetail, error) {
	return r.details[id], nil
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

func (r *fakeOrderRepo) NextNumber(string) (int64, error) { return 1, nil }

type fakeSaleRepo struct {
	sales   map[string]*entity.Sale
	details map[string][]*entity.LineDetail
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) CreateDetail(d *entity.LineDetail) error {
	r.details[d.ParentID] = append(r.details[d.ParentID], d)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }

func (r *fakeSaleRepo) GetDetails(id string) ([]*entity.LineDetail, error) {
	return r.details[id], nil
}

// fakeTx corre fn con los repos en memoria (sin rollback real).
type fakeTx struct {
	orders *fakeOrderRepo
	sales  *fakeSaleRepo
}

func (tx *fakeTx) RunSale(_ context.Context, fn func(repository.OrderRepository, repository.SaleRepository) error) error {
	return fn(tx.orders, tx.sales)
}

type saleCounter struct {
	byKey    map[string]int
	adjusted int
}

func (m *saleCounter) CartOpened()                 {}
func (m *saleCounter) CartAdjusted(string, string) { m.adjusted++ }
func (m *saleCounter) OrderSubmitted()             {}
func (m *saleCounter) SaleCreated(origin, fiscalType string) {
	if m.byKey == nil {
		m.byKey = map[string]int{}
	}
	m.byKey[origin+"/"+fiscalType]++
}
