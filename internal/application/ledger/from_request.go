package ledger

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/domain"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
)

// Adaptadores request HTTP → caso de uso. Los formularios llegan como strings;
// aquí se convierten a sus tipos y cualquier campo faltante o malformado falla
// con domain.ErrInvalidInput antes de tocar la lógica del libro.

// ExecuteFromRequest adapta dto.RecordPurchaseRequest a Execute(ctx, PurchaseInput).
func (uc *RecordPurchaseUseCase) ExecuteFromRequest(ctx context.Context, in dto.RecordPurchaseRequest) (*PurchaseResult, error) {
	quantity, rate, err := parseQuantityRate(in.Quantity, in.Rate)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, PurchaseInput{
		Company:  strings.TrimSpace(in.Company),
		Product:  strings.TrimSpace(in.Product),
		Quantity: quantity,
		Rate:     rate,
	})
}

// ExecuteFromRequest adapta dto.RecordSaleRequest a Execute(ctx, SaleInput).
func (uc *RecordSaleUseCase) ExecuteFromRequest(ctx context.Context, in dto.RecordSaleRequest) (*SaleResult, error) {
	quantity, rate, err := parseQuantityRate(in.Quantity, in.Rate)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, SaleInput{
		Company:  strings.TrimSpace(in.Company),
		Product:  strings.TrimSpace(in.Product),
		Quantity: quantity,
		Rate:     rate,
	})
}

// ExecuteFromRequest adapta dto.AddItemRequest a Execute(ctx, AddItemInput).
func (uc *AddItemUseCase) ExecuteFromRequest(ctx context.Context, in dto.AddItemRequest) (*entity.Item, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(in.Rate))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return uc.Execute(ctx, AddItemInput{
		Name: strings.TrimSpace(in.Name),
		Rate: rate,
	})
}

func parseQuantityRate(quantityRaw, rateRaw string) (int64, decimal.Decimal, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(quantityRaw), 10, 64)
	if err != nil {
		return 0, decimal.Zero, domain.ErrInvalidInput
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(rateRaw))
	if err != nil {
		return 0, decimal.Zero, domain.ErrInvalidInput
	}
	return quantity, rate, nil
}
