package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hospstock/hospstock-api/internal/application/auth"
	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
)

// RouterDeps dépendances pour le router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ImportUC   *stock.ImportUseCase
	MovementUC *stock.RegisterMovementUseCase
	QueryUC    *stock.QueryUseCase
	ReportUC   *stock.ReportUseCase
	JWTSecret  string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token)
	protected := api.Group("/stock", AuthMiddleware(deps.JWTSecret))

	stockHandler := NewStockHandler(deps.ImportUC, deps.MovementUC, deps.QueryUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	// Import d'initialisation : réservé aux admins
	protected.Post("/import", RequireRole(entity.RoleAdmin), stockHandler.Import)

	protected.Get("/produits", stockHandler.ListProduits)
	protected.Post("/mouvements", stockHandler.RegisterMovement)
	protected.Get("/mouvements", stockHandler.ListMouvements)

	protected.Get("/recap", reportHandler.GetRecap)
	protected.Post("/rapport", reportHandler.ExportRapport)
	protected.Post("/rapport-verification", reportHandler.RenderVerification)
}
