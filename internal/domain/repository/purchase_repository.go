package repository

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase.
// Las compras son inmutables: solo se insertan.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
}
