package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada contra una empresa. Inmutable.
type Sale struct {
	ID          string
	CompanyID   string
	Product     string
	Quantity    int64
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal
	Timestamp   time.Time
}
