package repository

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
// Name no es único: los Get por nombre devuelven la fila más antigua
// (primera coincidencia) o (nil, nil) si no existe.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	// GetByNameForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// las mutaciones de existencias dentro de la transacción.
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	List(ctx context.Context) ([]*entity.Item, error)
}
