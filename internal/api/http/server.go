package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wavepark/shift-manager/internal/api/http/handlers"
	"github.com/wavepark/shift-manager/internal/auth"
	"github.com/wavepark/shift-manager/internal/config"
	"github.com/wavepark/shift-manager/internal/observability"
	"github.com/wavepark/shift-manager/internal/repository"
	"github.com/wavepark/shift-manager/internal/service"
)

// Repositories groups the stores the HTTP surface reads and writes.
type Repositories struct {
	Users       repository.UserRepository
	Employees   repository.EmployeeRepository
	Tasks       repository.TaskRepository
	Shifts      repository.ShiftRepository
	Assignments repository.AssignmentRepository
}

// Dependencies is everything NewServer needs to assemble the app.
type Dependencies struct {
	Config       config.Config
	Logger       *zap.Logger
	Metrics      *observability.Metrics
	Repositories Repositories
	Tokens       *auth.TokenManager
	Throttle     auth.LoginThrottle
	Probes       map[string]handlers.Pinger
}

// NewServer builds the fiber app with services, middlewares and routes.
func NewServer(deps Dependencies) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := deps.Config
	repos := deps.Repositories

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo: repos.Users,
		Tokens:   deps.Tokens,
		Throttle: deps.Throttle,
		Logger:   logger,
	})
	userService := service.NewUserService(repos.Users, cfg.Auth.BcryptCost)
	authMiddleware := auth.NewAuthMiddleware(auth.NewAuthenticator(deps.Tokens, repos.Users))

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, MiddlewareConfig{
		Logger:      logger,
		Metrics:     deps.Metrics,
		Timeout:     cfg.App.RequestTimeout(),
		CORSOrigins: cfg.App.CORSAllowOrigins,
	})

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps.Metrics, deps.Probes),
		Auth:           handlers.NewAuthHandler(authService, userService),
		Employees:      handlers.NewEmployeesHandler(service.NewEmployeeService(repos.Employees)),
		Tasks:          handlers.NewTasksHandler(service.NewTaskService(repos.Tasks)),
		Shifts:         handlers.NewShiftsHandler(service.NewShiftService(repos.Shifts)),
		Assignments:    handlers.NewAssignmentsHandler(service.NewAssignmentService(repos.Assignments)),
		Reports:        handlers.NewReportsHandler(service.NewReportService(repos.Assignments)),
		AuthMiddleware: authMiddleware,
	})
	return app
}
