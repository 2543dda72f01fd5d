package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/visitas-api/internal/application/auth"
	"github.com/jhoicas/visitas-api/internal/application/report"
	"github.com/jhoicas/visitas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CompanyUC  *usecase.CompanyUseCase
	ClientUC   *usecase.ClientUseCase
	VisitUC    *usecase.VisitUseCase
	ZoneUC     *usecase.ZoneUseCase
	ReportUC   *report.UseCase
	JWTSecret  string
	UploadsDir string
}

// Router registra las rutas de la API. Las rutas conservan los nombres en
// español del API original (/visita, /zonas, /generar-pdf).
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Post("/usuarios", authHandler.Register)

	// Imágenes subidas (logos y evidencia), servidas estáticamente.
	app.Static("/uploads", deps.UploadsDir)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (listado para cualquier autenticado; mutaciones solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/usuarios", userHandler.List)
	protected.Put("/usuarios/:id", RequireAdmin(), userHandler.Update)
	protected.Delete("/usuarios/:id", RequireAdmin(), userHandler.Delete)

	// Empresa del usuario autenticado
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/empresa", companyHandler.Get)
	protected.Post("/empresa", companyHandler.Create)
	protected.Put("/empresa", companyHandler.Update)

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC)
	protected.Get("/clientes", clientHandler.List)
	protected.Post("/clientes", clientHandler.Create)
	protected.Put("/clientes/:id", clientHandler.Update)
	protected.Delete("/clientes/:id", clientHandler.Delete)

	// Visitas técnicas
	visitHandler := NewVisitHandler(deps.VisitUC)
	protected.Get("/visitas", visitHandler.List)
	protected.Post("/visita", visitHandler.Create)
	protected.Get("/visita/:id", visitHandler.Get)
	protected.Put("/visita/:id", visitHandler.Update)
	protected.Delete("/visita/:id", visitHandler.Delete)

	// Zonas sueltas
	zoneHandler := NewZoneHandler(deps.ZoneUC)
	protected.Get("/zonas/:visitaId", zoneHandler.ListByVisit)
	protected.Post("/zonas", zoneHandler.Create)
	protected.Put("/zonas/:id", zoneHandler.Update)
	protected.Delete("/zonas/:id", zoneHandler.Delete)

	// Archivos e informes
	uploadHandler := NewUploadHandler(deps.UploadsDir)
	protected.Post("/upload", uploadHandler.Upload)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Post("/generar-pdf/:visitaId", reportHandler.Generate)
}
