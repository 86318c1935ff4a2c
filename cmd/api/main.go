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

	"github.com/jhoicas/logos-estoque/internal/application/adjustment"
	appanalytics "github.com/jhoicas/logos-estoque/internal/application/analytics"
	"github.com/jhoicas/logos-estoque/internal/application/auth"
	"github.com/jhoicas/logos-estoque/internal/application/billing"
	"github.com/jhoicas/logos-estoque/internal/application/inventory"
	"github.com/jhoicas/logos-estoque/internal/application/usecase"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/kv"
	"github.com/jhoicas/logos-estoque/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/logos-estoque/internal/interfaces/http"
	"github.com/jhoicas/logos-estoque/pkg/config"
	"github.com/jhoicas/logos-estoque/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: usando secreto de desarrollo")
		cfg.JWT.Secret = "dev-secret-" + cfg.App.Name
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer store.Close()

	itemRepo := kv.NewItemRepository(store)
	movRepo := kv.NewMovementRepository(store)
	userRepo := kv.NewUserRepository(store)
	saleRepo := kv.NewSaleRepository(store)
	customerRepo := kv.NewCustomerRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	adjRepo := kv.NewAdjustmentRepository(store)
	settingsRepo := kv.NewSettingsRepository(store)
	txRunner := kv.NewTxRunner(store)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, log)
	historyUC := inventory.NewMovementHistoryUseCase(movRepo)
	auditUC := inventory.NewAuditUseCase(txRunner, registerMovementUC, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(itemRepo)
	adjustmentUC := adjustment.NewUseCase(txRunner, registerMovementUC, itemRepo, adjRepo, userRepo, log)
	saleUC := billing.NewSaleUseCase(txRunner, registerMovementUC, itemRepo, customerRepo, settingsRepo, nil, log)
	salesHistoryUC := billing.NewSalesHistoryUseCase(saleRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, cfg.App.PhoneRegion)
	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, movRepo, saleRepo, taskRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.BootstrapConfig{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, log)
	if err := authUC.EnsureDefaultManager(ctx); err != nil {
		log.Fatal().Err(err).Msg("crear cuenta de gerencia")
	}
	userUC := usecase.NewUserUseCase(userRepo, authUC)
	itemUC := usecase.NewItemUseCase(itemRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

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
		Title:    "Logos Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		ItemUC:           itemUC,
		TaskUC:           taskUC,
		SettingsUC:       settingsUC,
		RegisterMovement: registerMovementUC,
		History:          historyUC,
		Audit:            auditUC,
		Replenishment:    replenishmentUC,
		AdjustmentUC:     adjustmentUC,
		SaleUC:           saleUC,
		SalesHistory:     salesHistoryUC,
		CustomerUC:       customerUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
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
