package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Nilp45/asset-tracker-backend/internal/application/analytics"
	"github.com/Nilp45/asset-tracker-backend/internal/application/auth"
	"github.com/Nilp45/asset-tracker-backend/internal/application/challan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/maintenance"
	"github.com/Nilp45/asset-tracker-backend/internal/application/scan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/session"
	"github.com/Nilp45/asset-tracker-backend/internal/application/transaction"
	"github.com/Nilp45/asset-tracker-backend/internal/application/usecase"
	"github.com/Nilp45/asset-tracker-backend/internal/infrastructure/postgres"
	httpRouter "github.com/Nilp45/asset-tracker-backend/internal/interfaces/http"
	"github.com/Nilp45/asset-tracker-backend/pkg/config"
	"github.com/Nilp45/asset-tracker-backend/pkg/jwt"
	"github.com/Nilp45/asset-tracker-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	dsn := cfg.DB.ConnectionString()

	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(dsn, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("database migrations")
		}
		log.Info().Msg("database migrations applied")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	plantRepo := postgres.NewPlantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sessionUC := session.NewUseCase(sessionRepo, txRunner)
	scanUC := scan.NewRecordScanUseCase(txRunner)
	assetUC := usecase.NewAssetUseCase(assetRepo, plantRepo, movementRepo)
	pmDueUC := maintenance.NewPMDueUseCase(assetRepo)
	dashboardUC := analytics.NewDashboardUseCase(assetRepo, movementRepo)
	transactionUC := transaction.NewUseCase(movementRepo, sessionRepo)
	challanUC := challan.NewUseCase(sessionRepo, movementRepo, plantRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	plantUC := usecase.NewPlantUseCase(plantRepo)

	// A password change or reset bumps the token version; tokens minted
	// before that stop working here.
	verify := func(ctx context.Context, id jwt.Identity) error {
		u, err := userRepo.GetByID(ctx, id.UserID)
		if err != nil {
			return err
		}
		if u == nil || !u.Active || u.TokenVersion != id.TokenVersion {
			return errors.New("stale token")
		}
		return nil
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Asset Tracker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		httpRouter.RegisterMetrics(app)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SessionUC:     sessionUC,
		ScanUC:        scanUC,
		AssetUC:       assetUC,
		PMDueUC:       pmDueUC,
		DashboardUC:   dashboardUC,
		TransactionUC: transactionUC,
		ChallanUC:     challanUC,
		UserUC:        userUC,
		PlantUC:       plantUC,
		JWTSecret:     cfg.JWT.Secret,
		Verify:        verify,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
