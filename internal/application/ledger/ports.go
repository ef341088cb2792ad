package ledger

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza el todo-o-nada de cada operación
// del libro: si fn devuelve error no queda ninguna escritura parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		itemRepo repository.ItemRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
