package usecase

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo para la página principal.
type CatalogUseCase struct {
	itemRepo repository.ItemRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(itemRepo repository.ItemRepository) *CatalogUseCase {
	return &CatalogUseCase{itemRepo: itemRepo}
}

// List devuelve todos los artículos del catálogo.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	list, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.ItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Rate:      it.Rate,
			Quantity:  it.Quantity,
			CreatedAt: it.CreatedAt,
		})
	}
	return items, nil
}
