package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/application/ledger"
	"github.com/jhoicas/ledger-pro/internal/domain"
)

func TestAddItem_CreaConExistenciasEnCero(t *testing.T) {
	store := &memStore{}
	uc := ledger.NewAddItemUseCase(&memItemRepo{store: store})

	item, err := uc.Execute(context.Background(), ledger.AddItemInput{
		Name: "Widget", Rate: decimal.NewFromFloat(2.5),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, int64(0), item.Quantity, "el alta directa arranca sin existencias")
	assert.True(t, item.Rate.Equal(decimal.NewFromFloat(2.5)))
	require.Len(t, store.items, 1)
}

func TestAddItem_PermiteNombresDuplicados(t *testing.T) {
	// No hay chequeo de duplicados: dos altas con el mismo nombre conviven y
	// los lookups por nombre toman la fila más antigua.
	store := &memStore{}
	uc := ledger.NewAddItemUseCase(&memItemRepo{store: store})
	ctx := context.Background()

	first, err := uc.Execute(ctx, ledger.AddItemInput{Name: "Widget", Rate: decimal.NewFromFloat(1)})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, ledger.AddItemInput{Name: "Widget", Rate: decimal.NewFromFloat(2)})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.items, 2)
}

func TestAddItem_NombreVacioFallaValidacion(t *testing.T) {
	store := &memStore{}
	uc := ledger.NewAddItemUseCase(&memItemRepo{store: store})

	_, err := uc.Execute(context.Background(), ledger.AddItemInput{Name: "", Rate: decimal.NewFromFloat(1)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.items)
}

func TestAddItem_FromRequest_TarifaMalformada(t *testing.T) {
	store := &memStore{}
	uc := ledger.NewAddItemUseCase(&memItemRepo{store: store})

	_, err := uc.ExecuteFromRequest(context.Background(), dto.AddItemRequest{Name: "Widget", Rate: "gratis"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.items)
}
