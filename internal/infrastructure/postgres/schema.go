package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL idempotente del esquema. items.name no lleva UNIQUE a propósito: los
// nombres duplicados están permitidos y los lookups toman la fila más antigua.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS companies (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	cash_balance NUMERIC(18,4) NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	rate       NUMERIC(18,4) NOT NULL,
	quantity   BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_items_name ON items (name, created_at);

CREATE TABLE IF NOT EXISTS purchases (
	id           UUID PRIMARY KEY,
	company_id   UUID NOT NULL REFERENCES companies(id),
	product      TEXT NOT NULL,
	quantity     BIGINT NOT NULL,
	rate         NUMERIC(18,4) NOT NULL,
	total_amount NUMERIC(18,4) NOT NULL,
	ts           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
	id           UUID PRIMARY KEY,
	company_id   UUID NOT NULL REFERENCES companies(id),
	product      TEXT NOT NULL,
	quantity     BIGINT NOT NULL,
	rate         NUMERIC(18,4) NOT NULL,
	total_amount NUMERIC(18,4) NOT NULL,
	ts           TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema aplica el DDL al arrancar (bootstrap de desarrollo; en producción
// conviene migraciones versionadas).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
