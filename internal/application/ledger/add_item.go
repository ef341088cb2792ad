package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/domain"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// AddItemUseCase alta directa de artículos en el catálogo, independiente de
// cualquier compra. No transaccional: una sola inserción.
type AddItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewAddItemUseCase construye el caso de uso.
func NewAddItemUseCase(itemRepo repository.ItemRepository) *AddItemUseCase {
	return &AddItemUseCase{itemRepo: itemRepo}
}

// AddItemInput entrada para crear un artículo.
type AddItemInput struct {
	Name string
	Rate decimal.Decimal
}

// Execute crea el artículo con existencias en cero. No hay chequeo de nombre
// duplicado: los duplicados están permitidos y no se deduplican.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*entity.Item, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Rate:      input.Rate,
		Quantity:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
