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

// RecordPurchaseUseCase registra compras de forma transaccional: debita el
// saldo de la empresa, hace upsert del artículo en el catálogo y persiste la
// fila de compra, todo con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RecordPurchaseUseCase struct {
	txRunner TxRunner
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(txRunner TxRunner) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{txRunner: txRunner}
}

// PurchaseInput entrada para registrar una compra.
// Quantity puede ser cero o negativa: el libro registra lo que el caller manda.
type PurchaseInput struct {
	Company  string
	Product  string
	Quantity int64
	Rate     decimal.Decimal
}

// PurchaseResult resultado de una compra registrada. NewItem indica si la
// compra creó el artículo en el catálogo o reabasteció uno existente; ambos
// caminos son éxito para el caller.
type PurchaseResult struct {
	PurchaseID string
	Total      decimal.Decimal
	NewBalance decimal.Decimal
	NewItem    bool
}

// Execute inicia una transacción, bloquea la empresa y el artículo, aplica
// saldo -= cantidad × tarifa, el upsert de catálogo y la inserción de la
// compra, y hace Commit o Rollback.
func (uc *RecordPurchaseUseCase) Execute(ctx context.Context, input PurchaseInput) (*PurchaseResult, error) {
	if input.Company == "" || input.Product == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *PurchaseResult
	err := uc.txRunner.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		itemRepo repository.ItemRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		// Bloquea la fila de la empresa para serializar las mutaciones de saldo
		company, err := companyRepo.GetByNameForUpdate(ctx, input.Company)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}

		now := time.Now()
		total := decimal.NewFromInt(input.Quantity).Mul(input.Rate)
		// Sin piso: el saldo puede quedar negativo
		newBalance := company.CashBalance.Sub(total)
		if err := companyRepo.UpdateBalance(ctx, company.ID, newBalance); err != nil {
			return err
		}

		// Upsert de catálogo: si el artículo existe suma existencias (la tarifa
		// registrada no se toca); si no, lo crea con la tarifa de esta compra.
		newItem := false
		item, err := itemRepo.GetByNameForUpdate(ctx, input.Product)
		if err != nil {
			return err
		}
		if item == nil {
			item = &entity.Item{
				ID:        uuid.New().String(),
				Name:      input.Product,
				Rate:      input.Rate,
				Quantity:  input.Quantity,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := itemRepo.Create(ctx, item); err != nil {
				return err
			}
			newItem = true
		} else {
			if err := itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity+input.Quantity); err != nil {
				return err
			}
		}

		purchase := &entity.Purchase{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			Product:     input.Product,
			Quantity:    input.Quantity,
			Rate:        input.Rate,
			TotalAmount: total,
			Timestamp:   now,
		}
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}

		result = &PurchaseResult{
			PurchaseID: purchase.ID,
			Total:      total,
			NewBalance: newBalance,
			NewItem:    newItem,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
