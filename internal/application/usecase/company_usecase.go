package usecase

import (
	"context"

	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// CompanyUseCase lecturas de empresas para los formularios de compra/venta.
// Las empresas se crean por fuera (cmd/seed); no hay endpoint de alta.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// List devuelve todas las empresas registradas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	companies := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		companies = append(companies, dto.CompanyResponse{
			ID:          c.ID,
			Name:        c.Name,
			CashBalance: c.CashBalance,
		})
	}
	return companies, nil
}
