package repository

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: solo se insertan.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
}
