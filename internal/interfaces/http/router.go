package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/application/warehouse"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransactionUC *warehouse.TransactionUseCase
	ReversalUC    *warehouse.ReversalUseCase
	StockQueryUC  *warehouse.StockQueryUseCase
	DocumentUC    *document.UseCase
	ItemUC        *usecase.ItemUseCase
	LocationUC    *usecase.LocationUseCase
	SupplierUC    *usecase.SupplierUseCase
	CustomerUC    *usecase.CustomerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Movimientos de bodega
	warehouseGroup := api.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.TransactionUC, deps.ReversalUC, deps.DocumentUC)
	warehouseGroup.Post("/inbound", warehouseHandler.CreateInbound)
	warehouseGroup.Delete("/inbound/:id", warehouseHandler.RevertInbound)
	warehouseGroup.Get("/inbound/:id/pdf", warehouseHandler.InboundPDF)
	warehouseGroup.Post("/outbound", warehouseHandler.CreateOutbound)
	warehouseGroup.Delete("/outbound/:id", warehouseHandler.RevertOutbound)
	warehouseGroup.Get("/outbound/:id/pdf", warehouseHandler.OutboundPDF)

	// Artículos: CRUD + consultas de stock, libro y reconstrucción
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	stockHandler := NewStockHandler(deps.StockQueryUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.ListLowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/stock", stockHandler.GetItemStock)
	items.Get("/:id/stock/:locationId", stockHandler.GetLocationStock)
	items.Get("/:id/ledger", stockHandler.ListLedger)
	items.Post("/:id/rebuild", stockHandler.Rebuild)

	// Ubicaciones
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Delete("/:id", locationHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)
}
