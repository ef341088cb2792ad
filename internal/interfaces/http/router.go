package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ledger-pro/internal/application/ledger"
	"github.com/jhoicas/ledger-pro/internal/application/usecase"
	"github.com/jhoicas/ledger-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC      *usecase.CatalogUseCase
	CompanyUC      *usecase.CompanyUseCase
	RecordPurchase *ledger.RecordPurchaseUseCase
	RecordSale     *ledger.RecordSaleUseCase
	AddItem        *ledger.AddItemUseCase
	Log            *logger.Logger
}

// Router registra las rutas de la aplicación (páginas HTML + formularios).
func Router(app *fiber.App, deps RouterDeps) {
	pages := NewPageHandler(deps.CatalogUC, deps.CompanyUC)
	app.Get("/", pages.Index)
	app.Get("/purchase", pages.PurchaseForm)
	app.Get("/sale", pages.SaleForm)

	ledgerHandler := NewLedgerHandler(deps.RecordPurchase, deps.RecordSale, deps.AddItem, deps.Log)
	app.Post("/add_item", ledgerHandler.AddItem)
	app.Post("/store_purchase", ledgerHandler.StorePurchase)
	app.Post("/store_sale", ledgerHandler.StoreSale)
}
