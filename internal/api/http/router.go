package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/http/handlers"
	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Tasks          *handlers.TasksHandler
	Shifts         *handlers.ShiftsHandler
	Assignments    *handlers.AssignmentsHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// Each route lists its roles explicitly; there is no hierarchy.
var (
	anyRole    = auth.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleViewer)
	editors    = auth.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminsOnly = auth.RequireRole(domain.RoleAdmin)
)

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authenticated := cfg.AuthMiddleware.Handle

	authGroup := app.Group("/auth")
	authGroup.Post("/token", cfg.Auth.Token)
	authGroup.Post("/users", authenticated, editors, cfg.Auth.CreateUser)
	authGroup.Get("/users", authenticated, editors, cfg.Auth.ListUsers)

	employees := app.Group("/employees", authenticated)
	employees.Get("", anyRole, cfg.Employees.List)
	employees.Post("", editors, cfg.Employees.Create)
	employees.Put("/:id", editors, cfg.Employees.Replace)
	employees.Delete("/:id", adminsOnly, cfg.Employees.Delete)

	tasks := app.Group("/tasks", authenticated)
	tasks.Get("", anyRole, cfg.Tasks.List)
	tasks.Post("", editors, cfg.Tasks.Create)
	tasks.Put("/:id", editors, cfg.Tasks.Replace)
	tasks.Delete("/:id", adminsOnly, cfg.Tasks.Delete)

	shifts := app.Group("/shifts", authenticated)
	shifts.Get("", anyRole, cfg.Shifts.List)
	shifts.Post("", editors, cfg.Shifts.Create)
	shifts.Put("/:id", editors, cfg.Shifts.Replace)
	shifts.Delete("/:id", adminsOnly, cfg.Shifts.Delete)

	assignments := app.Group("/assignments", authenticated)
	assignments.Get("", anyRole, cfg.Assignments.List)
	assignments.Post("", editors, cfg.Assignments.Create)
	assignments.Patch("/:id", editors, cfg.Assignments.Patch)
	assignments.Delete("/:id", editors, cfg.Assignments.Delete)

	reports := app.Group("/reports", authenticated, editors)
	reports.Get("/assignments.csv", cfg.Reports.AssignmentsCSV)
	reports.Get("/assignments.xlsx", cfg.Reports.AssignmentsXLSX)
}
