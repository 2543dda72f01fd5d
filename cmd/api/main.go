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
	"github.com/jhoicas/visitas-api/internal/application/auth"
	"github.com/jhoicas/visitas-api/internal/application/report"
	"github.com/jhoicas/visitas-api/internal/application/usecase"
	"github.com/jhoicas/visitas-api/internal/infrastructure/email"
	infrapdf "github.com/jhoicas/visitas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/visitas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/visitas-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/visitas-api/internal/interfaces/http"
	"github.com/jhoicas/visitas-api/pkg/config"
	"github.com/jhoicas/visitas-api/pkg/logger"
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
	companyRepo := postgres.NewCompanyRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	zoneRepo := postgres.NewZoneRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	visitUC := usecase.NewVisitUseCase(txRunner, visitRepo, zoneRepo, userRepo, clientRepo)
	zoneUC := usecase.NewZoneUseCase(zoneRepo, visitRepo)

	// Informes: las imágenes vienen del mismo directorio de uploads que sirve el API.
	imageSource := storage.NewLocalImageSource(cfg.Storage.UploadsDir)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(imageSource)
	mailer := email.NewGomailSender(cfg.SMTP)
	reportUC := report.NewUseCase(
		visitRepo, zoneRepo, userRepo, clientRepo, companyRepo,
		pdfGenerator, mailer,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación de PDF puede tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // fotos de evidencia
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Visitas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CompanyUC:  companyUC,
		ClientUC:   clientUC,
		VisitUC:    visitUC,
		ZoneUC:     zoneUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
		UploadsDir: cfg.Storage.UploadsDir,
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
