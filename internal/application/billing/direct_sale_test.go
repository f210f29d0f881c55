package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/billing"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

func newDirectSale(t *testing.T) (*billing.DirectSaleUseCase, *fakeSaleRepo, *saleCounter) {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p-1": {ID: "p-1", CompanyID: companyID, Name: "Yerba 1kg", UnitMeasure: "Unidad", Price: d("100"), TaxRate: d("21"), Stock: d("10"), Active: true},
		"p-2": {ID: "p-2", CompanyID: companyID, Name: "Aceite", UnitMeasure: "Unidad", Price: d("80"), TaxRate: d("21"), Stock: d("1.8"), Active: true},
	}}
	customers := newFakeCustomerRepo(
		&entity.Customer{ID: "c-cf", CompanyID: companyID, Name: "Juan Pérez", TaxCondition: "consumidor  final", City: "Funes"},
		&entity.Customer{ID: "c-mono", CompanyID: companyID, Name: "Kiosco Sol", TaxCondition: "Monotributo", City: "Rosario"},
	)
	orders := &fakeOrderRepo{orders: map[string]*entity.Order{}, details: map[string][]*entity.LineDetail{}}
	sales := &fakeSaleRepo{sales: map[string]*entity.Sale{}, details: map[string][]*entity.LineDetail{}}
	m := &saleCounter{}
	uc := billing.NewDirectSaleUseCase(&fakeTx{orders: orders, sales: sales}, sales, products, customers, m, logger.Nop())
	return uc, sales, m
}

func TestDirectSale_ConsumidorFinal_C(t *testing.T) {
	uc, sales, m := newDirectSale(t)

	sale, err := uc.Create(context.Background(), companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "C",
		RequestCAE: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleOriginDirect, sale.Origin)
	assert.Empty(t, sale.OrderID)
	assert.Equal(t, "C", sale.FiscalType)
	assert.Equal(t, entity.CAEStatusPending, sale.CAEStatus)
	assert.True(t, sale.GrandTotal.Equal(d("121")))
	assert.Equal(t, 1, m.byKey["venta_directa/C"])
	require.Len(t, sales.details[sale.ID], 1)
}

func TestDirectSale_DescuentoFijoMayorAlTotal(t *testing.T) {
	uc, _, _ := newDirectSale(t)

	sale, err := uc.Create(context.Background(), companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "X",
		Discount:   dto.ClosingDiscountRequest{Kind: "fixed", Value: d("999999")},
	})
	require.NoError(t, err)
	require.NotNil(t, sale.Discount)
	assert.True(t, sale.Discount.ComputedAmount.Equal(d("121")))
	assert.True(t, sale.FinalTotal.IsZero())
}

func TestDirectSale_TablaDistintaAPedido(t *testing.T) {
	uc, _, _ := newDirectSale(t)
	req := dto.DirectSaleRequest{
		CustomerID: "c-mono",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "A",
	}

	_, err := uc.Create(context.Background(), companyID, "u-1", req)
	assert.ErrorIs(t, err, domain.ErrFiscalTypeNotAllowed, "en venta directa Monotributo es B")

	req.FiscalType = "B"
	sale, err := uc.Create(context.Background(), companyID, "u-1", req)
	require.NoError(t, err)
	assert.Equal(t, "B", sale.FiscalType)
}

func TestDirectSale_AjustesComoAvisos(t *testing.T) {
	uc, _, _ := newDirectSale(t)
	pct := d("-5")

	sale, err := uc.Create(context.Background(), companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items: []dto.DirectSaleItem{
			{ProductID: "p-2", Quantity: d("3"), DiscountPercent: &pct},
		},
		FiscalType: "C",
	})
	require.NoError(t, err)

	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].Quantity.Equal(d("1.5")))
	assert.True(t, sale.Details[0].DiscountPercent.IsZero())
	require.Len(t, sale.Warnings, 2)
	assert.Equal(t, "stock_limit", sale.Warnings[0].Reason)
	assert.Equal(t, "discount_percent", sale.Warnings[1].Field)
}

func TestDirectSale_ProductoRepetido_RecortaAlStock(t *testing.T) {
	uc, _, m := newDirectSale(t)

	sale, err := uc.Create(context.Background(), companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items: []dto.DirectSaleItem{
			{ProductID: "p-2", Quantity: d("1")},
			{ProductID: "p-2", Quantity: d("1.5")},
		},
		FiscalType: "C",
	})
	require.NoError(t, err)

	require.Len(t, sale.Details, 1)
	assert.True(t, sale.Details[0].Quantity.Equal(d("1.5")), "stock 1.8 => tope 1.5")
	require.Len(t, sale.Warnings, 1)
	assert.Equal(t, "stock_limit", sale.Warnings[0].Reason)
	assert.True(t, sale.Warnings[0].Requested.Equal(d("2.5")))
	assert.Equal(t, 1, m.adjusted)
}

func TestDirectSale_Errores(t *testing.T) {
	uc, _, _ := newDirectSale(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, companyID, "u-1", dto.DirectSaleRequest{CustomerID: "c-cf", FiscalType: "C"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"items es obligatorio"}, verr.Fields)

	_, err = uc.Create(ctx, companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "X",
		RequestCAE: true,
	})
	assert.ErrorIs(t, err, domain.ErrCAENotAllowed)

	_, err = uc.Create(ctx, companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-nadie",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "C",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, "co-2", "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("1")}},
		FiscalType: "C",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDirectSale_Get(t *testing.T) {
	uc, _, _ := newDirectSale(t)
	sale, err := uc.Create(context.Background(), companyID, "u-1", dto.DirectSaleRequest{
		CustomerID: "c-cf",
		Items:      []dto.DirectSaleItem{{ProductID: "p-1", Quantity: d("2")}},
		FiscalType: "C",
	})
	require.NoError(t, err)

	got, err := uc.Get(companyID, sale.ID)
	require.NoError(t, err)
	assert.True(t, got.FinalTotal.Equal(d("242")))
	assert.Len(t, got.Details, 1)

	_, err = uc.Get("co-2", sale.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
