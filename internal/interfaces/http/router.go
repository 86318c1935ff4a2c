package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logos-estoque/internal/application/adjustment"
	appanalytics "github.com/jhoicas/logos-estoque/internal/application/analytics"
	"github.com/jhoicas/logos-estoque/internal/application/auth"
	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	ItemUC           *usecase.ItemUseCase
	TaskUC           *usecase.TaskUseCase
	SettingsUC       *usecase.SettingsUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	History          *inventory.MovementHistoryUseCase
	Audit            *inventory.AuditUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	AdjustmentUC     *adjustment.UseCase
	SaleUC           *billing.SaleUseCase
	SalesHistory     *billing.SalesHistoryUseCase
	CustomerUC       *billing.CustomerUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	perm := func(module string) fiber.Handler { return RequirePermission(module, deps.UserUC) }
	gerencia := RequireRole(entity.RoleGerencia)

	// Catálogo
	itemHandler := NewItemHandler(deps.ItemUC)
	items := protected.Group("/items", perm(entity.PermEstoque))
	items.Get("/categories", itemHandler.Categories)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	protected.Get("/addresses", perm(entity.PermEnderecamento), itemHandler.Addresses)

	// Movimientos, auditoría y reposición
	invHandler := NewInventoryHandler(deps.RegisterMovement, deps.History, deps.Audit, deps.Replenishment)
	inv := protected.Group("/inventory")
	inv.Post("/movements", perm(entity.PermMovimentacoes), invHandler.RegisterMovement)
	inv.Get("/movements", perm(entity.PermMovimentacoes), invHandler.History)
	inv.Get("/balances", perm(entity.PermRelatorios), invHandler.Balances)
	inv.Post("/audit", perm(entity.PermEstoque), invHandler.Audit)
	inv.Get("/replenishment-list", perm(entity.PermRelatorios), invHandler.GetReplenishmentList)

	// Ajustes: solicitar con permiso; revisar solo GERENCIA
	adjHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adj := protected.Group("/adjustments", perm(entity.PermAjustes))
	adj.Post("/", adjHandler.Request)
	adj.Get("/", adjHandler.List)
	adj.Post("/:id/review", gerencia, adjHandler.Review)

	// PDV
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SalesHistory)
	sales := protected.Group("/sales")
	sales.Post("/quote", saleHandler.Quote)
	sales.Post("/", saleHandler.Process)
	sales.Get("/", perm(entity.PermRelatorios), saleHandler.History)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:uuid", customerHandler.GetByUUID)
	customers.Put("/:uuid", customerHandler.Update)

	// Atividades
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := protected.Group("/tasks", perm(entity.PermAtividades))
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id/status", taskHandler.UpdateStatus)
	tasks.Delete("/:id", taskHandler.Delete)

	// Paneles
	dashHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", perm(entity.PermDashboard), dashHandler.GetSummary)
	protected.Get("/dashboard/today", perm(entity.PermGestaoDia), dashHandler.GetManagementDay)

	// Administración (GERENCIA)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings/interest-rate", gerencia, settingsHandler.SetInterestRate)
	protected.Put("/settings/max-discount-rate", gerencia, settingsHandler.SetMaxDiscountRate)

	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", gerencia, RequireOwnPermission(entity.PermAdmin, deps.UserUC))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id/permissions", userHandler.UpdatePermissions)
	users.Put("/:id/role", userHandler.UpdateRole)
}
