package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ferreteria-api/internal/application/auth"
	"github.com/jhoicas/Ferreteria-api/internal/application/inventory"
	"github.com/jhoicas/Ferreteria-api/internal/application/reports"
	"github.com/jhoicas/Ferreteria-api/internal/application/sales"
	"github.com/jhoicas/Ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	PersonUC        *usecase.PersonUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	TypeMovementUC  *usecase.TypeMovementUseCase
	InventoryUC     *inventory.UseCase
	SalesUC         *sales.UseCase
	ReportsUC       *reports.UseCase
	PDFUC           *reports.PDFUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
//
// Reglas de acceso:
//   - catálogos y personas: lectura autenticada, escritura solo admin
//   - inventario y movimientos: escritura admin o bodeguero
//   - ventas: escritura admin o vendedor
//   - reportes y dashboard: cualquier usuario autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRoles(entity.RoleAdmin)
	stockRoles := RequireRoles(entity.RoleAdmin, entity.RoleBodeguero)
	salesRoles := RequireRoles(entity.RoleAdmin, entity.RoleVendedor)

	// Auth: login público, registro de cuentas solo admin
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Personas
	persons := protected.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Get("/", personHandler.List)
	persons.Get("/:id", personHandler.GetByID)
	persons.Post("/", adminOnly, personHandler.Create)
	persons.Patch("/:id", adminOnly, personHandler.Update)
	persons.Delete("/:id", adminOnly, personHandler.Delete)

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.PaymentMethodUC, deps.TypeMovementUC)

	categories := protected.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Post("/", adminOnly, catalogHandler.CreateCategory)
	categories.Patch("/:id", adminOnly, catalogHandler.UpdateCategory)
	categories.Delete("/:id", adminOnly, catalogHandler.DeleteCategory)

	paymentMethods := protected.Group("/payment-methods")
	paymentMethods.Get("/", catalogHandler.ListPaymentMethods)
	paymentMethods.Get("/:id", catalogHandler.GetPaymentMethod)
	paymentMethods.Post("/", adminOnly, catalogHandler.CreatePaymentMethod)
	paymentMethods.Patch("/:id", adminOnly, catalogHandler.UpdatePaymentMethod)
	paymentMethods.Delete("/:id", adminOnly, catalogHandler.DeletePaymentMethod)

	typeMovements := protected.Group("/type-movements")
	typeMovements.Get("/", catalogHandler.ListTypeMovements)
	typeMovements.Get("/:id", catalogHandler.GetTypeMovement)
	typeMovements.Post("/", adminOnly, catalogHandler.CreateTypeMovement)
	typeMovements.Patch("/:id", adminOnly, catalogHandler.UpdateTypeMovement)
	typeMovements.Delete("/:id", adminOnly, catalogHandler.DeleteTypeMovement)

	// Productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", stockRoles, productHandler.Create)
	products.Patch("/:id", stockRoles, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventario y movimientos
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)

	inventories := protected.Group("/inventories")
	inventories.Get("/", inventoryHandler.ListInventory)
	inventories.Get("/product/:productId", inventoryHandler.GetInventoryByProduct)
	inventories.Post("/", stockRoles, inventoryHandler.CreateInventory)
	inventories.Delete("/product/:productId", stockRoles, inventoryHandler.DeleteInventoryByProduct)

	movements := protected.Group("/movements")
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Get("/:id", inventoryHandler.GetMovement)
	movements.Post("/", stockRoles, inventoryHandler.RegisterMovement)
	movements.Patch("/:id", stockRoles, inventoryHandler.UpdateMovement)
	movements.Delete("/:id", adminOnly, inventoryHandler.DeleteMovement)

	// Ventas
	saleHandler := NewSaleHandler(deps.SalesUC, deps.PDFUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/factura", saleHandler.DownloadReceipt)
	salesGroup.Post("/", salesRoles, saleHandler.Create)
	salesGroup.Patch("/:id", salesRoles, saleHandler.Update)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)

	// Reportes y dashboard
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.PDFUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/sales", reportsHandler.SalesSummary)
	reportsGroup.Get("/top-products", reportsHandler.TopProducts)
	reportsGroup.Get("/sales-by-category", reportsHandler.SalesByCategory)
	reportsGroup.Get("/low-stock", reportsHandler.LowStock)
	reportsGroup.Get("/stock/pdf", reportsHandler.StockReportPDF)
	protected.Get("/dashboard", reportsHandler.Dashboard)
}
