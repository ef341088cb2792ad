package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra registrada contra una empresa. Inmutable una
// vez creada; TotalAmount = Quantity × Rate calculado al momento del registro.
type Purchase struct {
	ID          string
	CompanyID   string
	Product     string
	Quantity    int64
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal
	Timestamp   time.Time
}
