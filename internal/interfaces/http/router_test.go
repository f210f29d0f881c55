package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/billing"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/cartstore"
	apphttp "github.com/jhoicas/Pedidos-api/internal/interfaces/http"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// buildAPI arma la API completa sobre repositorios en memoria.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	products := memProducts{
		"p-yerba":  {ID: "p-yerba", CompanyID: testCompanyID, SKU: "YER-1", Name: "Yerba 1kg", UnitMeasure: "Unidad", Price: d("100"), TaxRate: d("21"), Stock: d("10"), Active: true},
		"p-azucar": {ID: "p-azucar", CompanyID: testCompanyID, SKU: "AZU-1", Name: "Azúcar suelta", UnitMeasure: "Kg", Price: d("50"), TaxRate: d("10.5"), Stock: d("3.7"), Active: true},
	}
	customers := memCustomers{
		"c-ri": {ID: "c-ri", CompanyID: testCompanyID, Name: "Distribuidora Norte SRL", TaxCondition: "Responsable Inscripto", City: "Rosario"},
		"c-cf": {ID: "c-cf", CompanyID: testCompanyID, Name: "Juan Pérez", TaxCondition: "Consumidor Final", City: "Funes"},
	}
	db := newMemDB()
	store := cartstore.NewMemoryStore(time.Hour)
	log := logger.Nop()
	m := ports.NopMetrics{}

	cartUC := pedidos.NewCartUseCase(store, products, customers, m, log)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(products),
		CustomerUC:     billing.NewCustomerUseCase(customers),
		CartUC:         cartUC,
		SubmitOrderUC:  pedidos.NewSubmitOrderUseCase(store, db, orderRepo{db}, m, log),
		InvoiceOrderUC: billing.NewInvoiceOrderUseCase(db, orderRepo{db}, customers, m, log),
		DirectSaleUC:   billing.NewDirectSaleUseCase(db, saleRepo{db}, products, customers, m, log),
		JWTSecret:      testJWTSecret,
	})
	return app
}

// call hace la petición y decodifica el cuerpo en out (si no es nil).
func call(t *testing.T, app *fiber.App, method, path, auth, body string, out interface{}) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_FlujoCompletoDePedido(t *testing.T) {
	app := buildAPI(t)
	vendedor := bearer(t, testCompanyID, "vendedor")
	gerente := bearer(t, testCompanyID, "gerente")

	var cart dto.CartResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/carts", vendedor, "", &cart))
	require.NotEmpty(t, cart.ID)
	base := "/api/carts/" + cart.ID

	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, base+"/items", vendedor, `{"product_id":"p-yerba","quantity":2}`, &cart))
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, base+"/items", vendedor, `{"product_id":"p-azucar","quantity":5}`, &cart))
	require.Len(t, cart.Items, 2)
	assert.True(t, cart.Items[1].Quantity.Equal(d("3.5")), "azúcar limitada a stock 3.7 => 3.5")
	require.Len(t, cart.Warnings, 1)
	assert.Equal(t, "stock_limit", cart.Warnings[0].Reason)
	assert.True(t, cart.Totals.GrandTotal.Equal(d("435.375")))

	// Cambiar precio es solo para admin o gerente.
	var errBody dto.ErrorResponse
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodPut, base+"/items/p-yerba/price", vendedor, `{"unit_price":120}`, &errBody))
	assert.Equal(t, "FORBIDDEN", errBody.Code)
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPut, base+"/items/p-yerba/price", gerente, `{"unit_price":120}`, &cart))
	assert.True(t, cart.Totals.NetSubtotal.Equal(d("415")))
	assert.True(t, cart.Totals.GrandTotal.Equal(d("483.775")))

	assert.Equal(t, http.StatusUnprocessableEntity, call(t, app, http.MethodPost, base+"/submit", vendedor, "", &errBody))
	assert.Equal(t, "CUSTOMER_REQUIRED", errBody.Code)

	require.Equal(t, http.StatusOK, call(t, app, http.MethodPut, base+"/customer", vendedor, `{"customer_id":"c-ri"}`, &cart))
	require.NotNil(t, cart.Customer)

	var types dto.FiscalTypesResponse
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, base+"/fiscal-types", vendedor, "", &types))
	assert.Equal(t, "A", types.Default)

	var preview dto.DiscountPreviewResponse
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/discounts/preview?cart_id="+cart.ID+"&kind=percentOfSubtotal&value=10", vendedor, "", &preview))
	assert.True(t, preview.Applied)
	assert.True(t, preview.Discount.ComputedAmount.Equal(d("41.5")))
	assert.True(t, preview.FinalTotal.Equal(d("442.275")))

	var order dto.OrderResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, base+"/submit", vendedor, "", &order))
	assert.Equal(t, "P-00000001", order.Number)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.GrandTotal.Equal(d("483.775")))
	assert.Len(t, order.Details, 2)

	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, base, vendedor, "", &cart))
	assert.Empty(t, cart.Items, "el carrito queda vacío después de guardar")

	var sale dto.SaleResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/invoice", vendedor,
		`{"fiscal_type":"A","discount":{"kind":"fixed","value":100},"request_cae":true}`, &sale))
	assert.Equal(t, entity.SaleOriginOrder, sale.Origin)
	assert.Equal(t, entity.CAEStatusPending, sale.CAEStatus)
	assert.True(t, sale.FinalTotal.Equal(d("383.775")))

	assert.Equal(t, http.StatusConflict, call(t, app, http.MethodPost, "/api/orders/"+order.ID+"/invoice", vendedor, `{"fiscal_type":"A"}`, &errBody))
}

func TestRouter_CarritoDeOtraEmpresa_Retorna403(t *testing.T) {
	app := buildAPI(t)
	var cart dto.CartResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/carts", bearer(t, testCompanyID, "vendedor"), "", &cart))

	var errBody dto.ErrorResponse
	otra := bearer(t, "00000000-0000-0000-0000-000000000099", "vendedor")
	assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, "/api/carts/"+cart.ID, otra, "", &errBody))
	assert.Equal(t, "FORBIDDEN", errBody.Code)
}

func TestRouter_CarritoInexistente_Retorna404(t *testing.T) {
	app := buildAPI(t)
	var errBody dto.ErrorResponse
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/carts/no-existe", bearer(t, testCompanyID, "vendedor"), "", &errBody))
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestRouter_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(t)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodPost, "/api/carts", "", "", nil))
}

func TestRouter_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildAPI(t)
	vendedor := bearer(t, testCompanyID, "vendedor")
	var cart dto.CartResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/carts", vendedor, "", &cart))

	var errBody dto.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/api/carts/"+cart.ID+"/items", vendedor, `{"product_id":`, &errBody))
	assert.Equal(t, "INVALID_BODY", errBody.Code)
}

func TestRouter_PreviewConValorNoNumerico_SinDescuento(t *testing.T) {
	app := buildAPI(t)
	vendedor := bearer(t, testCompanyID, "vendedor")
	var cart dto.CartResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/carts", vendedor, "", &cart))
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/carts/"+cart.ID+"/items", vendedor, `{"product_id":"p-yerba","quantity":2}`, &cart))

	var preview dto.DiscountPreviewResponse
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/discounts/preview?cart_id="+cart.ID+"&kind=fixed&value=abc", vendedor, "", &preview))
	assert.False(t, preview.Applied)
	assert.True(t, preview.Discount.ComputedAmount.IsZero())
	assert.True(t, preview.GrandTotal.Equal(d("242")))
	assert.True(t, preview.FinalTotal.Equal(preview.GrandTotal))
}

func TestRouter_VentaDirectaConsumidorFinal(t *testing.T) {
	app := buildAPI(t)
	vendedor := bearer(t, testCompanyID, "vendedor")

	var sale dto.SaleResponse
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/sales/direct", vendedor,
		`{"customer_id":"c-cf","fiscal_type":"C","items":[{"product_id":"p-yerba","quantity":1.2}]}`, &sale))
	assert.Equal(t, entity.SaleOriginDirect, sale.Origin)
	assert.Equal(t, "C", sale.FiscalType)
	assert.True(t, sale.GrandTotal.Equal(d("121")), "1.2 se redondea a 1")
	require.Len(t, sale.Warnings, 1)
	assert.Equal(t, "rounded", sale.Warnings[0].Reason)

	var got dto.SaleResponse
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/sales/"+sale.ID, vendedor, "", &got))
	assert.Equal(t, sale.ID, got.ID)

	var errBody dto.ErrorResponse
	assert.Equal(t, http.StatusUnprocessableEntity, call(t, app, http.MethodPost, "/api/sales/direct", vendedor,
		`{"customer_id":"c-cf","fiscal_type":"A","items":[{"product_id":"p-yerba","quantity":1}]}`, &errBody))
	assert.Equal(t, "FISCAL_TYPE_NOT_ALLOWED", errBody.Code)
}
