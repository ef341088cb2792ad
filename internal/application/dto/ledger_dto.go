package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddItemRequest alta directa de un artículo en el catálogo (formulario add_item).
// Los campos llegan como strings del form-encoded; la conversión numérica ocurre
// en el caso de uso y falla con VALIDATION antes de tocar el libro.
type AddItemRequest struct {
	Name string `form:"name"`
	Rate string `form:"rate"`
}

// RecordPurchaseRequest registro de una compra (formulario store_purchase).
type RecordPurchaseRequest struct {
	Company  string `form:"company"`
	Product  string `form:"product"`
	Quantity string `form:"quantity"`
	Rate     string `form:"rate"`
}

// RecordSaleRequest registro de una venta (formulario store_sale).
type RecordSaleRequest struct {
	Company  string `form:"company"`
	Product  string `form:"product"`
	Quantity string `form:"quantity"`
	Rate     string `form:"rate"`
}

// ItemResponse artículo del catálogo para listados y respuestas.
type ItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// CompanyResponse empresa para los formularios de compra/venta.
type CompanyResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CashBalance decimal.Decimal `json:"cash_balance"`
}
