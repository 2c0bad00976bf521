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
	"github.com/jhoicas/Ferreteria-api/internal/application/auth"
	"github.com/jhoicas/Ferreteria-api/internal/application/inventory"
	"github.com/jhoicas/Ferreteria-api/internal/application/reports"
	"github.com/jhoicas/Ferreteria-api/internal/application/sales"
	"github.com/jhoicas/Ferreteria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Ferreteria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ferreteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ferreteria-api/internal/interfaces/http"
	"github.com/jhoicas/Ferreteria-api/pkg/config"
	"github.com/jhoicas/Ferreteria-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	personRepo := postgres.NewPersonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	typeMovementRepo := postgres.NewTypeMovementRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(
		txRunner, inventoryRepo, movementRepo, productRepo, userRepo, typeMovementRepo,
	)
	salesUC := sales.NewUseCase(
		txRunner, inventoryUC,
		saleRepo, personRepo, userRepo, productRepo, paymentMethodRepo, typeMovementRepo,
	)
	authUC := auth.NewUseCase(userRepo, personRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	personUC := usecase.NewPersonUseCase(personRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	paymentMethodUC := usecase.NewPaymentMethodUseCase(paymentMethodRepo)
	typeMovementUC := usecase.NewTypeMovementUseCase(typeMovementRepo)

	reportsUC := reports.NewUseCase(reportsRepo, movementRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := reports.NewPDFUseCase(saleRepo, productRepo, reportsRepo, pdfGenerator)

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
		Title:    "Ferretería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		PersonUC:        personUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		PaymentMethodUC: paymentMethodUC,
		TypeMovementUC:  typeMovementUC,
		InventoryUC:     inventoryUC,
		SalesUC:         salesUC,
		ReportsUC:       reportsUC,
		PDFUC:           pdfUC,
		JWTSecret:       cfg.JWT.Secret,
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
