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

	"github.com/agroapp/agroapp-api/internal/application/auth"
	"github.com/agroapp/agroapp-api/internal/application/formflow"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
	infrapdf "github.com/agroapp/agroapp-api/internal/infrastructure/pdf"
	"github.com/agroapp/agroapp-api/internal/infrastructure/postgres"
	httpRouter "github.com/agroapp/agroapp-api/internal/interfaces/http"
	"github.com/agroapp/agroapp-api/pkg/config"
	"github.com/agroapp/agroapp-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	speciesRepo := postgres.NewSpeciesRepository(pool)
	stateRepo := postgres.NewStateRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	supplyCatRepo := postgres.NewSupplyCategoryRepository(pool)
	noveltyRepo := postgres.NewNoveltyRepository(pool)
	noveltyCatRepo := postgres.NewNoveltyCategoryRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	refService := usecase.NewReferenceService(
		speciesRepo, stateRepo, batchRepo, supplyRepo, supplyCatRepo, noveltyCatRepo,
	)

	speciesUC := usecase.NewSpeciesUseCase(speciesRepo)
	stateUC := usecase.NewStateUseCase(stateRepo)
	batchUC := usecase.NewBatchUseCase(batchRepo, refService)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo, supplyCatRepo, refService)
	noveltyUC := usecase.NewNoveltyUseCase(noveltyRepo, noveltyCatRepo, refService)
	productionUC := usecase.NewProductionUseCase(txRunner, productionRepo, refService)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, refService)
	dashboardUC := usecase.NewDashboardUseCase(summaryRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(productionRepo, pdfGenerator, cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	formGateway := usecase.NewFormGateway(
		speciesUC, batchUC, supplyUC, noveltyUC, productionUC, expenseUC,
		batchRepo, speciesRepo, supplyRepo, noveltyRepo, expenseRepo,
	)
	formRegistry := formflow.NewRegistry(refService, formGateway, 30*time.Minute)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go formRegistry.RunSweeper(sweepCtx, 5*time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Agroapp API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SpeciesUC:    speciesUC,
		StateUC:      stateUC,
		BatchUC:      batchUC,
		SupplyUC:     supplyUC,
		NoveltyUC:    noveltyUC,
		ProductionUC: productionUC,
		ExpenseUC:    expenseUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		FormRegistry: formRegistry,
		FormGateway:  formGateway,
		JWTSecret:    cfg.JWT.Secret,
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
