// seed crea empresas en la base de datos. Las empresas no tienen endpoint de
// alta: se siembran por fuera con este comando.
//
// Uso: go run ./cmd/seed [-balance 0] nombre [nombre...]
// Sin argumentos siembra un juego de empresas de demostración.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/ledger-pro/pkg/config"
)

func main() {
	balanceFlag := flag.String("balance", "0", "saldo inicial de cada empresa")
	flag.Parse()

	balance, err := decimal.NewFromString(*balanceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "saldo inválido %q: %v\n", *balanceFlag, err)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"Acme", "Globex", "Initech"}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap del esquema: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewCompanyRepository(pool)
	for _, name := range names {
		existing, err := repo.GetByName(ctx, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "buscar %q: %v\n", name, err)
			os.Exit(1)
		}
		if existing != nil {
			fmt.Printf("empresa %q ya existe, se omite\n", name)
			continue
		}
		now := time.Now()
		company := &entity.Company{
			ID:          uuid.New().String(),
			Name:        name,
			CashBalance: balance,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(ctx, company); err != nil {
			fmt.Fprintf(os.Stderr, "crear %q: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("empresa %q creada con saldo %s\n", name, balance)
	}
}
