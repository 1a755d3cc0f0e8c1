package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nilp45/asset-tracker-backend/internal/application/analytics"
	"github.com/Nilp45/asset-tracker-backend/internal/application/auth"
	"github.com/Nilp45/asset-tracker-backend/internal/application/challan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/maintenance"
	"github.com/Nilp45/asset-tracker-backend/internal/application/scan"
	"github.com/Nilp45/asset-tracker-backend/internal/application/session"
	"github.com/Nilp45/asset-tracker-backend/internal/application/transaction"
	"github.com/Nilp45/asset-tracker-backend/internal/application/usecase"
	"github.com/Nilp45/asset-tracker-backend/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SessionUC     *session.UseCase
	ScanUC        *scan.RecordScanUseCase
	AssetUC       *usecase.AssetUseCase
	PMDueUC       *maintenance.PMDueUseCase
	DashboardUC   *analytics.DashboardUseCase
	TransactionUC *transaction.UseCase
	ChallanUC     *challan.UseCase
	UserUC        *usecase.UserUseCase
	PlantUC       *usecase.PlantUseCase

	JWTSecret string
	Verify    IdentityVerifier
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Public
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Verify))
	protected.Post("/change-password", authHandler.ChangePassword)

	sessions := protected.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.SessionUC)
	sessions.Post("/start", sessionHandler.Start)
	sessions.Post("/close", sessionHandler.Close)
	sessions.Get("/:id", sessionHandler.Get)

	scanHandler := NewScanHandler(deps.ScanUC)
	protected.Post("/scan", scanHandler.Record)

	assetHandler := NewAssetHandler(deps.AssetUC, deps.PMDueUC)
	protected.Get("/assets", assetHandler.Search)
	protected.Get("/assets/location", assetHandler.Locate)
	protected.Get("/assets/pm-pending", assetHandler.PMPending)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	protected.Get("/transactions", transactionHandler.List)

	challanHandler := NewChallanHandler(deps.ChallanUC)
	protected.Get("/challan", challanHandler.ByInvoice)
	protected.Post("/challan/transport", challanHandler.SaveTransport)

	// Admin-only management
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users", userHandler.List)
	admin.Post("/users/:id/toggle", userHandler.Toggle)
	admin.Post("/users/:id/reset-password", userHandler.ResetPassword)

	plantHandler := NewPlantHandler(deps.PlantUC)
	admin.Post("/plants", plantHandler.Create)
	admin.Get("/plants", plantHandler.List)
	admin.Post("/plants/:plant_id/toggle", plantHandler.Toggle)

	admin.Post("/assets", assetHandler.AddBatch)
}
