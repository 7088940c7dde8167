package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/application/auth"
	"github.com/tu-usuario/delivery-pro/internal/application/session"
	"github.com/tu-usuario/delivery-pro/internal/application/usecase"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/pkg/postal"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Tracker      *session.Tracker
	FiscalYearUC *usecase.FiscalYearUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	OrderUC      *usecase.OrderUseCase
	ManifestUC   *usecase.ManifestUseCase
	Postal       *postal.Catalogue
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; logout requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión: bootstrap + destino de ruta (cualquier rol)
	sessionHandler := NewSessionHandler(deps.Tracker)
	protected.Get("/session", sessionHandler.Get)

	// Catálogo postal (cualquier rol autenticado)
	postalHandler := NewPostalHandler(deps.Postal)
	protected.Get("/postal/:code", postalHandler.Lookup)

	// Años fiscales (solo admin; es la operación de setup, no exige readiness)
	fyGroup := protected.Group("/fiscal-years", RequireRole(entity.RoleAdmin))
	fyHandler := NewFiscalYearHandler(deps.FiscalYearUC)
	fyGroup.Post("/", fyHandler.Create)
	fyGroup.Get("/", fyHandler.List)

	// Empresas (solo admin; crear empresa también es parte del setup)
	companies := protected.Group("/companies", RequireRole(entity.RoleAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Usuarios (solo admin, con workspace listo)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin), RequireReadiness(deps.Tracker))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Provision)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)

	// Productos (admin, operador y proveedor; exige empresa y año fiscal)
	products := protected.Group("/products",
		RequireRole(entity.RoleAdmin, entity.RoleOperator, entity.RoleSupplier),
		RequireWorkspace(),
	)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Órdenes (todos los roles de operación; el use case recorta visibilidad)
	orders := protected.Group("/orders",
		RequireRole(entity.RoleAdmin, entity.RoleOperator, entity.RoleDriver, entity.RoleCustomer),
		RequireWorkspace(),
	)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ManifestUC)
	orders.Post("/", RequireRole(entity.RoleAdmin, entity.RoleOperator), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/assign", RequireRole(entity.RoleAdmin, entity.RoleOperator), orderHandler.AssignDriver)
	orders.Put("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleOperator, entity.RoleDriver), orderHandler.UpdateStatus)
	orders.Get("/:id/manifest", RequireRole(entity.RoleAdmin, entity.RoleOperator, entity.RoleDriver), orderHandler.Manifest)
}
