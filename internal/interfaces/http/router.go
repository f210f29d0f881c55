package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Pedidos-api/internal/application/auth"
	"github.com/jhoicas/Pedidos-api/internal/application/billing"
	"github.com/jhoicas/Pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CustomerUC     *billing.CustomerUseCase
	CartUC         *pedidos.CartUseCase
	SubmitOrderUC  *pedidos.SubmitOrderUseCase
	InvoiceOrderUC *billing.InvoiceOrderUseCase
	DirectSaleUC   *billing.DirectSaleUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Carrito del pedido
	carts := protected.Group("/carts")
	cartHandler := NewCartHandler(deps.CartUC)
	orderHandler := NewOrderHandler(deps.SubmitOrderUC, deps.InvoiceOrderUC)
	carts.Post("/", cartHandler.Open)
	carts.Get("/:id", cartHandler.Get)
	carts.Delete("/:id", cartHandler.Clear)
	carts.Post("/:id/items", cartHandler.AddItem)
	carts.Post("/:id/items/bulk", cartHandler.AddItems)
	carts.Patch("/:id/items/:productId", cartHandler.UpdateItem)
	carts.Put("/:id/items/:productId/price", RequireRole(entity.PriceEditorRoles...), cartHandler.SetUnitPrice)
	carts.Delete("/:id/items/:productId", cartHandler.RemoveItem)
	carts.Put("/:id/customer", cartHandler.SetCustomer)
	carts.Put("/:id/notes", cartHandler.SetNotes)
	carts.Get("/:id/fiscal-types", cartHandler.FiscalTypes)
	carts.Post("/:id/submit", orderHandler.Submit)

	orders := protected.Group("/orders")
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/invoice", orderHandler.Invoice)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.DirectSaleUC)
	sales.Post("/direct", saleHandler.CreateDirect)
	sales.Get("/:id", saleHandler.GetByID)

	discounts := protected.Group("/discounts")
	discountHandler := NewDiscountHandler(deps.CartUC)
	discounts.Get("/preview", discountHandler.Preview)
}
