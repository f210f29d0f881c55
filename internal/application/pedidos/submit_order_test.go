package pedidos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

func (f *fixture) readyCart(t *testing.T) string {
	t.Helper()
	id := f.open(t)
	f.add(t, id, "p-yerba", "2")
	f.add(t, id, "p-azucar", "1")
	_, err := f.cart.SetCustomer(context.Background(), companyID, userID, id, dto.SetCartCustomerRequest{CustomerID: "c-ri"})
	require.NoError(t, err)
	_, err = f.cart.SetNotes(context.Background(), companyID, userID, id, dto.SetCartNotesRequest{Notes: "Entregar por la mañana"})
	require.NoError(t, err)
	return id
}

func TestSubmit_GuardaPedidoYVaciaCarrito(t *testing.T) {
	f := newFixture(t)
	id := f.readyCart(t)
	ctx := context.Background()

	order, err := f.submit.Submit(ctx, companyID, userID, id)
	require.NoError(t, err)

	assert.Equal(t, "P-00000001", order.Number)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "c-ri", order.CustomerID)
	assert.Equal(t, "Entregar por la mañana", order.Notes)
	// 2*100 + 1*50 = 250 neto; IVA 42 + 5.25
	assert.True(t, order.NetTotal.Equal(d("250")))
	assert.True(t, order.TaxTotal.Equal(d("47.25")))
	assert.True(t, order.GrandTotal.Equal(d("297.25")))
	require.Len(t, order.Details, 2)
	assert.Equal(t, "p-yerba", order.Details[0].ProductID)
	assert.True(t, order.Details[1].TaxAmount.Equal(d("5.25")))

	require.Len(t, f.orders.details[order.ID], 2)
	assert.Equal(t, 1, f.metrics.submitted)

	cart, err := f.cart.Get(ctx, companyID, userID, id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.Customer)
	assert.Empty(t, cart.Notes)
}

func TestSubmit_SinCliente(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)
	f.add(t, id, "p-yerba", "1")

	_, err := f.submit.Submit(context.Background(), companyID, userID, id)
	assert.ErrorIs(t, err, domain.ErrCustomerRequired)
}

func TestSubmit_CarritoVacio(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)
	_, err := f.cart.SetCustomer(context.Background(), companyID, userID, id, dto.SetCartCustomerRequest{CustomerID: "c-cf"})
	require.NoError(t, err)

	_, err = f.submit.Submit(context.Background(), companyID, userID, id)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmit_PrecioCero(t *testing.T) {
	f := newFixture(t)
	id := f.readyCart(t)
	_, err := f.cart.SetUnitPrice(context.Background(), companyID, userID, id, "p-azucar", dto.SetUnitPriceRequest{UnitPrice: d("0")})
	require.NoError(t, err)

	_, err = f.submit.Submit(context.Background(), companyID, userID, id)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	assert.Empty(t, f.orders.orders)
}

func TestSubmit_FallaGuardado_CarritoIntacto(t *testing.T) {
	f := newFixture(t)
	id := f.readyCart(t)
	f.orders.createErr = errors.New("db caída")

	_, err := f.submit.Submit(context.Background(), companyID, userID, id)
	require.Error(t, err)

	cart, err := f.cart.Get(context.Background(), companyID, userID, id)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.NotNil(t, cart.Customer)
	assert.Equal(t, 0, f.metrics.submitted)
}

func TestOrder_Get(t *testing.T) {
	f := newFixture(t)
	order, err := f.submit.Submit(context.Background(), companyID, userID, f.readyCart(t))
	require.NoError(t, err)

	got, err := f.submit.Get(companyID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Number, got.Number)
	assert.Len(t, got.Details, 2)

	_, err = f.submit.Get("co-2", order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.submit.Get(companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
