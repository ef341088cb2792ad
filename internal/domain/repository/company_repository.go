package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Los Get devuelven (nil, nil) cuando no existe la empresa.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	// GetByNameForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// las mutaciones de saldo dentro de la transacción.
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Company, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	List(ctx context.Context) ([]*entity.Company, error)
}
