package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/employee-api/internal/domain/employee"
	"github.com/jhoicas/employee-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeSvc EmployeeService
	Logger      *logger.Logger
	JWTSecret   string // vacío = escrituras sin autenticación
}

// Use registra los middlewares globales. RequestLogger envuelve a recover: un pánico
// también deja su línea de respuesta con status 500.
func Use(app fiber.Router, log *logger.Logger) {
	app.Use(RequestLogger(log))
	app.Use(recover.New())
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	h := NewEmployeeHandler(deps.EmployeeSvc, deps.Logger)
	auth := AuthMiddleware(deps.JWTSecret)

	employees := app.Group("/employee")

	// Lecturas (público)
	employees.Get("/:id", h.GetByID)
	employees.Get("/", h.List)

	// Escrituras (Bearer Token si hay JWT_SECRET)
	employees.Post("/", auth, h.Create)
	employees.Put("/", auth, h.Update)
	employees.Patch("/", auth, h.Update)
	if deps.JWTSecret != "" {
		employees.Delete("/:id", auth, RequireRole(employee.RoleAdmin), h.Delete)
	} else {
		employees.Delete("/:id", h.Delete)
	}
}
