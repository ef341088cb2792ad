package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo. Sin chequeo de duplicados: el esquema lo permite.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, rate, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Rate, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByName obtiene el artículo por nombre exacto; con duplicados gana la fila
// más antigua. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	query := `
		SELECT id, name, rate, quantity, created_at, updated_at
		FROM items WHERE name = $1
		ORDER BY created_at, id LIMIT 1`
	return r.scanOne(ctx, query, name, "get item by name")
}

// GetByNameForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE)
// para que las mutaciones de existencias queden serializadas por artículo.
func (r *ItemRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Item, error) {
	query := `
		SELECT id, name, rate, quantity, created_at, updated_at
		FROM items WHERE name = $1
		ORDER BY created_at, id LIMIT 1
		FOR UPDATE`
	return r.scanOne(ctx, query, name, "get item for update")
}

// UpdateQuantity fija las existencias del artículo. La tarifa no se toca.
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update quantity: artículo %s no existe", id)
	}
	return nil
}

// List devuelve todo el catálogo en orden de creación.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `
		SELECT id, name, rate, quantity, created_at, updated_at
		FROM items ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Rate, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *ItemRepo) scanOne(ctx context.Context, query, name, op string) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(ctx, query, name).Scan(
		&it.ID, &it.Name, &it.Rate, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
