package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/cartences/cartences-api/docs"
	"github.com/cartences/cartences-api/internal/api/handler"
	"github.com/cartences/cartences-api/internal/api/middleware"
	"github.com/cartences/cartences-api/internal/core/domain"
	"github.com/cartences/cartences-api/internal/core/service"
	"github.com/cartences/cartences-api/internal/infrastructure/config"
	"github.com/cartences/cartences-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/cartences/cartences-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cartences"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	sentenceRepo := postgres.NewSentenceRepository(pool)
	limiter := redisinfra.NewLoginThrottle(rdb, cfg.Login.MaxFailures, cfg.Login.Window)
	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	authService := service.NewAuthService(authRepo, tokens, limiter)
	gate := service.NewAuthzService(tokens, authRepo)
	sentenceService := service.NewSentenceService(sentenceRepo)

	authHandler := handler.NewAuthHandler(authService, tokens)
	sentenceHandler := handler.NewSentenceHandler(sentenceService)
	managerOnly := middleware.RequireRole(gate, domain.RoleManager)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/validate", authHandler.Validate)

	// --- Sentence routes ---
	e.GET("/cartences", sentenceHandler.Random)
	e.POST("/cartences", sentenceHandler.Create, managerOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
