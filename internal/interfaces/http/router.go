package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/asset"
	"github.com/jhoicas/Bodega-api/internal/application/batch"
	"github.com/jhoicas/Bodega-api/internal/application/report"
	"github.com/jhoicas/Bodega-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *stock.ProductUseCase
	StockUC     *stock.LedgerUseCase
	AllocatorUC *batch.AllocatorUseCase
	AssetUC     *asset.LedgerUseCase
	ReportUC    *report.AggregatorUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo cuelga de /api y requiere Bearer
// Token; el ámbito por negocio se chequea en los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock derivado y eventos IN/OUT
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/:id/stock", stockHandler.ComputeStock)
	products.Get("/:id/deliveries", stockHandler.ListDeliveries)
	products.Get("/:id/withdrawals", stockHandler.ListWithdrawals)

	stockGroup := api.Group("/stock")
	stockGroup.Get("/", stockHandler.ListStock)
	stockGroup.Post("/deliveries", stockHandler.RecordDelivery)
	stockGroup.Put("/deliveries/:id", stockHandler.UpdateDelivery)
	stockGroup.Delete("/deliveries/:id", stockHandler.DeleteDelivery)
	stockGroup.Post("/withdrawals", stockHandler.RecordWithdrawal)
	stockGroup.Put("/withdrawals/:id", stockHandler.UpdateWithdrawal)
	stockGroup.Delete("/withdrawals/:id", stockHandler.DeleteWithdrawal)

	// Lotes de vencimiento
	lotHandler := NewLotHandler(deps.AllocatorUC)
	stockGroup.Post("/deliveries/:id/lots", lotHandler.AddLot)
	stockGroup.Get("/deliveries/:id/lots", lotHandler.ListLots)
	products.Get("/:id/lots", lotHandler.ListProductLots)
	api.Delete("/lots/:id", lotHandler.RemoveLot)

	// Activos fijos y sus desgloses
	assets := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)
	assets.Post("/:id/duplicate", assetHandler.Duplicate)
	assets.Post("/:id/statuses", assetHandler.AddStatusAllocation)
	assets.Get("/:id/statuses", assetHandler.ListStatusAllocations)
	assets.Post("/:id/acquisitions", assetHandler.AddAcquisitionLot)
	assets.Get("/:id/acquisitions", assetHandler.ListAcquisitionLots)
	assets.Get("/:id/acquisitions/totals", assetHandler.AcquisitionTotals)
	api.Put("/asset-statuses/:id", assetHandler.UpdateStatusAllocation)
	api.Delete("/asset-statuses/:id", assetHandler.RemoveStatusAllocation)
	api.Put("/acquisitions/:id", assetHandler.UpdateAcquisitionLot)
	api.Delete("/acquisitions/:id", assetHandler.RemoveAcquisitionLot)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/perishable-movement", reportHandler.PerishableMovement)
	reports.Get("/expiry-lots", reportHandler.ExpiryLots)
	reports.Get("/delivery-log", reportHandler.DeliveryLog)
	reports.Get("/withdrawal-log", reportHandler.WithdrawalLog)
	reports.Get("/asset-statuses", reportHandler.AssetStatusBreakdown)
	reports.Get("/asset-acquisitions", reportHandler.AssetAcquisitions)
	reports.Get("/assets-summary", reportHandler.AssetsSummary)
}
