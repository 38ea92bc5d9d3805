package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/atelieplus/atelie-api/docs"
	appbilling "github.com/atelieplus/atelie-api/internal/application/billing"
	appfiscal "github.com/atelieplus/atelie-api/internal/application/fiscal"
	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/application/orders"
	"github.com/atelieplus/atelie-api/internal/application/usecase"
	infrabilling "github.com/atelieplus/atelie-api/internal/infrastructure/billing"
	infrafiscal "github.com/atelieplus/atelie-api/internal/infrastructure/fiscal"
	infrapdf "github.com/atelieplus/atelie-api/internal/infrastructure/pdf"
	"github.com/atelieplus/atelie-api/internal/infrastructure/postgres"
	infrastorage "github.com/atelieplus/atelie-api/internal/infrastructure/storage"
	httpRouter "github.com/atelieplus/atelie-api/internal/interfaces/http"
	"github.com/atelieplus/atelie-api/pkg/config"
	"github.com/atelieplus/atelie-api/pkg/health"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Repositórios
	empresaRepo := postgres.NewEmpresaRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewQuickServiceRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	payableRepo := postgres.NewPayableRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	noteRepo := postgres.NewFiscalNoteRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	referralRepo := postgres.NewReferralRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Estoque: movimentações transacionais + baixa heurística
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, itemRepo)
	deductionResolver := inventory.NewDeductionResolver(itemRepo, movementUC, log)

	// Casos de uso
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	quickServiceUC := usecase.NewQuickServiceUseCase(serviceRepo)
	inventoryUC := usecase.NewInventoryUseCase(itemRepo, movRepo)
	financeUC := usecase.NewFinanceUseCase(payableRepo, receivableRepo)
	referralUC := usecase.NewReferralUseCase(referralRepo, empresaRepo, log)

	orderUC := orders.NewOrderUseCase(
		orderRepo, customerRepo, productRepo, serviceRepo,
		receivableRepo, subRepo, deductionResolver, log,
	)
	quoteRenderer := infrapdf.NewMarotoQuoteRenderer()
	quoteUC := orders.NewQuoteUseCase(quoteRepo, customerRepo, empresaRepo, orderUC, quoteRenderer)
	executionUC := orders.NewServiceExecutionUseCase(serviceRepo, deductionResolver)

	issuerClient := infrafiscal.NewIssuerHTTPClient(cfg.Fiscal.BaseURL, cfg.Fiscal.APIKey)
	fiscalUC := appfiscal.NewFiscalUseCase(
		noteRepo, orderRepo, customerRepo, empresaRepo,
		issuerClient, cfg.App.ReadTimeout, log,
	)

	providerClient := infrabilling.NewProviderHTTPClient(cfg.Billing.BaseURL, cfg.Billing.APIKey)
	billingUC := appbilling.NewBillingUseCase(subRepo, providerClient, referralUC, cfg.App.ReadTimeout, log)

	storageClient := infrastorage.NewHTTPClient(cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.APIKey)
	uploadUC := usecase.NewUploadUseCase(storageClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // uploads de até 10 MB mais a folga do multipart
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Atelie API",
	}))

	dbChecker := health.NewChecker(pool, 5*time.Second, nil)
	app.Get("/health", func(c *fiber.Ctx) error {
		st := dbChecker.Check(c.Context())
		if !st.Reachable {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": cfg.App.Name, "db": st.Err,
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:      empresaUC,
		CustomerUC:     customerUC,
		ProductUC:      productUC,
		QuickServiceUC: quickServiceUC,
		InventoryUC:    inventoryUC,
		FinanceUC:      financeUC,
		ReferralUC:     referralUC,
		UploadUC:       uploadUC,
		MovementUC:     movementUC,
		OrderUC:        orderUC,
		QuoteUC:        quoteUC,
		ExecutionUC:    executionUC,
		FiscalUC:       fiscalUC,
		BillingUC:      billingUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
