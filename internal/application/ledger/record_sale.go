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

// RecordSaleUseCase registra ventas de forma transaccional: verifica la puerta
// de existencias, descuenta el catálogo, acredita el saldo de la empresa y
// persiste la fila de venta, con bloqueo de fila y Commit/Rollback.
type RecordSaleUseCase struct {
	txRunner TxRunner
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner}
}

// SaleInput entrada para registrar una venta.
type SaleInput struct {
	Company  string
	Product  string
	Quantity int64
	Rate     decimal.Decimal
}

// SaleResult resultado de una venta registrada.
type SaleResult struct {
	SaleID     string
	Total      decimal.Decimal
	NewBalance decimal.Decimal
	Remaining  int64
}

// Execute inicia una transacción, bloquea la empresa y el artículo, y aplica
// la puerta de existencias: existencias >= cantidad solicitada → descuenta,
// acredita saldo += cantidad × tarifa e inserta la venta; si no alcanza,
// ErrInsufficientStock sin ninguna mutación. Vender un producto que nunca se
// compró falla con ErrProductNotFound.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input SaleInput) (*SaleResult, error) {
	if input.Company == "" || input.Product == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *SaleResult
	err := uc.txRunner.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		itemRepo repository.ItemRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		company, err := companyRepo.GetByNameForUpdate(ctx, input.Company)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrCompanyNotFound
		}

		item, err := itemRepo.GetByNameForUpdate(ctx, input.Product)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrProductNotFound
		}

		// Puerta de existencias: el único punto de decisión del libro
		if item.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		remaining := item.Quantity - input.Quantity
		if err := itemRepo.UpdateQuantity(ctx, item.ID, remaining); err != nil {
			return err
		}

		total := decimal.NewFromInt(input.Quantity).Mul(input.Rate)
		newBalance := company.CashBalance.Add(total)
		if err := companyRepo.UpdateBalance(ctx, company.ID, newBalance); err != nil {
			return err
		}

		sale := &entity.Sale{
			ID:          uuid.New().String(),
			CompanyID:   company.ID,
			Product:     input.Product,
			Quantity:    input.Quantity,
			Rate:        input.Rate,
			TotalAmount: total,
			Timestamp:   now,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		result = &SaleResult{
			SaleID:     sale.ID,
			Total:      total,
			NewBalance: newBalance,
			Remaining:  remaining,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
