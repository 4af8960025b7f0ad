package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agroapp/agroapp-api/internal/application/auth"
	"github.com/agroapp/agroapp-api/internal/application/formflow"
	"github.com/agroapp/agroapp-api/internal/application/usecase"
	"github.com/agroapp/agroapp-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SpeciesUC    *usecase.SpeciesUseCase
	StateUC      *usecase.StateUseCase
	BatchUC      *usecase.BatchUseCase
	SupplyUC     *usecase.SupplyUseCase
	NoveltyUC    *usecase.NoveltyUseCase
	ProductionUC *usecase.ProductionUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	DashboardUC  *usecase.DashboardUseCase
	ReportUC     *usecase.ReportUseCase
	AuthUC       *auth.AuthUseCase
	FormRegistry *formflow.Registry
	FormGateway  formflow.Persister
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	// Alias que el frontend original usa para registro e inicio de sesión.
	api.Post("/users/register", authHandler.Register)
	api.Post("/users/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Especies
	species := protected.Group("/species")
	speciesHandler := NewSpeciesHandler(deps.SpeciesUC)
	species.Post("/", speciesHandler.Create)
	species.Get("/", speciesHandler.List)
	species.Get("/:id", speciesHandler.GetByID)
	species.Put("/:id", speciesHandler.Update)
	species.Delete("/:id", RequireRole(entity.RoleAdmin), speciesHandler.Delete)

	// Estados de lote (catálogo de solo lectura)
	stateHandler := NewStateHandler(deps.StateUC)
	protected.Get("/states", stateHandler.List)

	// Lotes (DELETE es borrado lógico: pasa el lote a Inactivo)
	batches := protected.Group("/batch")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id", batchHandler.Update)
	batches.Delete("/:id", batchHandler.Delete)

	// Insumos y sus categorías
	supplies := protected.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Get("/categories", supplyHandler.ListCategories)
	supplies.Post("/", supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/:id", supplyHandler.GetByID)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", RequireRole(entity.RoleAdmin), supplyHandler.Delete)
	// Alias con guion que consume el frontend original.
	protected.Get("/supplies-categories", supplyHandler.ListCategories)

	// Novedades y sus categorías
	novelties := protected.Group("/novelties")
	noveltyHandler := NewNoveltyHandler(deps.NoveltyUC)
	novelties.Post("/", noveltyHandler.Create)
	novelties.Get("/", noveltyHandler.List)
	novelties.Get("/:id", noveltyHandler.GetByID)
	novelties.Put("/:id", noveltyHandler.Update)
	novelties.Delete("/:id", noveltyHandler.Delete)
	protected.Get("/novelty-categories", noveltyHandler.ListCategories)

	// Producciones (inmutables: sin PUT ni DELETE)
	productions := protected.Group("/productions")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.ReportUC)
	productions.Get("/report.pdf", productionHandler.DownloadReport)
	productions.Post("/", productionHandler.Create)
	productions.Get("/", productionHandler.List)
	productions.Get("/:id", productionHandler.GetByID)

	// Gastos de producción (sin DELETE)
	expenses := protected.Group("/production-expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Sesiones de formulario (modales del cliente)
	forms := protected.Group("/form-sessions")
	formHandler := NewFormSessionHandler(deps.FormRegistry, deps.FormGateway)
	forms.Post("/", formHandler.Open)
	forms.Get("/:id", formHandler.Get)
	forms.Put("/:id/values", formHandler.SetValues)
	forms.Post("/:id/submit", formHandler.Submit)
	forms.Post("/:id/reload", formHandler.Reload)
	forms.Delete("/:id", formHandler.Close)
}
