package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bancobr/bank-api/internal/api/handler"
	"github.com/bancobr/bank-api/internal/api/middleware"
	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
	"github.com/bancobr/bank-api/internal/core/service"
	mongodb "github.com/bancobr/bank-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bancobr/bank-api/internal/infrastructure/db/redis"
)

// Deps bundles the process-wide collaborators the router wires together.
type Deps struct {
	Mongo          *mongo.Database
	Redis          *redis.Client
	Tokens         ports.TokenService
	Hasher         ports.PasswordHasher
	Audit          ports.AuditRecorder
	ThrottleMax    int
	ThrottleWindow time.Duration
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bankapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	authService := service.NewAuthService(userRepo, deps.Hasher, deps.Tokens, deps.Audit, deps.Log)
	throttle := redisdb.NewLoginThrottle(deps.Redis, deps.ThrottleMax, deps.ThrottleWindow)
	authHandler := handler.NewAuthHandler(authService, throttle, deps.Log)
	authMiddleware := middleware.Auth(deps.Tokens)

	customerRepo := mongodb.NewCustomerRepository(deps.Mongo)
	customerService := service.NewCustomerService(customerRepo)
	customerHandler := handler.NewCustomerHandler(customerService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Customer routes (token required; writes need elevated roles) ---
	customers := e.Group("/customers", authMiddleware)
	customers.GET("/:id", customerHandler.Get)
	customers.GET("", customerHandler.List, middleware.RBAC(domain.RoleManager, domain.RoleAdmin))
	customers.POST("", customerHandler.Create, middleware.RBAC(domain.RoleManager, domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
