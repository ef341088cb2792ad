package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa contra la que se registran compras y ventas.
// CashBalance es un saldo con signo: cada compra lo debita y cada venta lo
// acredita; no existe invariante de no-negatividad.
type Company struct {
	ID          string
	Name        string // clave de negocio para los lookups (coincidencia exacta)
	CashBalance decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
