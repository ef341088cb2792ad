package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
// Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa (usado por cmd/seed; no hay endpoint de alta).
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, cash_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CashBalance,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByName obtiene una empresa por nombre (coincidencia exacta, fila más antigua).
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `
		SELECT id, name, cash_balance, created_at, updated_at
		FROM companies WHERE name = $1
		ORDER BY created_at, id LIMIT 1`
	return r.scanOne(ctx, query, name, "get company by name")
}

// GetByNameForUpdate obtiene la empresa y bloquea la fila (SELECT FOR UPDATE)
// para que las mutaciones de saldo queden serializadas por empresa.
func (r *CompanyRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Company, error) {
	query := `
		SELECT id, name, cash_balance, created_at, updated_at
		FROM companies WHERE name = $1
		ORDER BY created_at, id LIMIT 1
		FOR UPDATE`
	return r.scanOne(ctx, query, name, "get company for update")
}

// UpdateBalance fija el saldo de la empresa.
func (r *CompanyRepo) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	query := `UPDATE companies SET cash_balance = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update balance: empresa %s no existe", id)
	}
	return nil
}

// List devuelve todas las empresas (catálogo pequeño, sin paginación).
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	query := `
		SELECT id, name, cash_balance, created_at, updated_at
		FROM companies ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CashBalance, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) scanOne(ctx context.Context, query, name, op string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, name).Scan(
		&c.ID, &c.Name, &c.CashBalance, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
