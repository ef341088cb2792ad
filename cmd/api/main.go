package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/jhoicas/ledger-pro/internal/application/ledger"
	"github.com/jhoicas/ledger-pro/internal/application/usecase"
	"github.com/jhoicas/ledger-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ledger-pro/internal/interfaces/http"
	"github.com/jhoicas/ledger-pro/pkg/config"
	"github.com/jhoicas/ledger-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordPurchaseUC := ledger.NewRecordPurchaseUseCase(txRunner)
	recordSaleUC := ledger.NewRecordSaleUseCase(txRunner)
	addItemUC := ledger.NewAddItemUseCase(itemRepo)
	catalogUC := usecase.NewCatalogUseCase(itemRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	engine := html.New("./web/views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:      catalogUC,
		CompanyUC:      companyUC,
		RecordPurchase: recordPurchaseUC,
		RecordSale:     recordSaleUC,
		AddItem:        addItemUC,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
