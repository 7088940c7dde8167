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

	"github.com/tu-usuario/delivery-pro/internal/application/auth"
	"github.com/tu-usuario/delivery-pro/internal/application/session"
	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/delivery-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/delivery-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/delivery-pro/internal/interfaces/http"
	"github.com/tu-usuario/delivery-pro/pkg/config"
	"github.com/tu-usuario/delivery-pro/pkg/logger"
	"github.com/tu-usuario/delivery-pro/pkg/postal"
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

	userRepo := postgres.NewUserRepository(pool)
	fiscalYearRepo := postgres.NewFiscalYearRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bootstrap de sesión: resolver + tracker con contador de generación
	resolver := session.NewResolver(userRepo, companyRepo, fiscalYearRepo, log)
	tracker := session.NewTracker(resolver)

	authUC := auth.NewAuthUseCase(userRepo, tracker, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	postalCat := postal.Default()
	log.Info().Int("codes", postalCat.Size()).Msg("catálogo postal cargado")

	fiscalYearUC := usecase.NewFiscalYearUseCase(fiscalYearRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, fiscalYearRepo, postalCat)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo)

	// PDF: manifiesto de entrega imprimible
	manifestGen := infrapdf.NewMarotoManifestGenerator()
	manifestUC := usecase.NewManifestUseCase(orderRepo, companyRepo, userRepo, manifestGen)

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
		Title:    "Delivery Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Tracker:      tracker,
		FiscalYearUC: fiscalYearUC,
		CompanyUC:    companyUC,
		UserUC:       userUC,
		ProductUC:    productUC,
		OrderUC:      orderUC,
		ManifestUC:   manifestUC,
		Postal:       postalCat,
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
