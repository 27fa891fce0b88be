package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Equipos-api/internal/application/analytics"
	"github.com/jhoicas/Equipos-api/internal/application/auth"
	"github.com/jhoicas/Equipos-api/internal/application/checkout"
	"github.com/jhoicas/Equipos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	EquipmentUC *usecase.EquipmentUseCase
	CheckoutUC  *checkout.UseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Equipments: lectura para todo rol, escritura solo admin
	equipments := protected.Group("/equipments")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipments.Get("/", equipmentHandler.List)
	equipments.Get("/code/:code", equipmentHandler.GetByCode)
	equipments.Get("/:id", equipmentHandler.GetByID)
	equipments.Get("/:id/label", equipmentHandler.Label)
	equipments.Post("/", RequireAdmin(), equipmentHandler.Create)
	equipments.Put("/:id", RequireAdmin(), equipmentHandler.Update)

	// Checkout: flujo de retiro/devolución, abierto a staff y admin
	checkoutGroup := protected.Group("/checkout", RequireRole("staff", "admin"))
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	checkoutGroup.Get("/resolve/:code", checkoutHandler.Resolve)
	checkoutGroup.Post("/commit", checkoutHandler.Commit)

	// Reports y bitácora de movimientos
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports", reportHandler.Report)
	protected.Get("/reports/export", reportHandler.Export)
	protected.Get("/movements", reportHandler.Movements)

	// Users: gestión de cuentas del tenant (solo admin)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies: administración de tenants (solo cuenta maestra)
	companies := protected.Group("/companies", RequireMaster())
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
}
