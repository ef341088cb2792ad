package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo global (no pertenece a ninguna empresa).
// Name no es único: pueden existir duplicados y los lookups toman la fila más
// antigua. Rate conserva la primera tarifa vista; una compra posterior del mismo
// artículo no la modifica.
type Item struct {
	ID        string
	Name      string
	Rate      decimal.Decimal // precio unitario
	Quantity  int64           // existencias; solo la puerta de venta impide que baje de cero
	CreatedAt time.Time
	UpdatedAt time.Time
}
