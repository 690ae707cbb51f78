package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/growth_estimator/internal/adapters/history"
	portsrepo "github.com/SscSPs/growth_estimator/internal/core/ports/repositories"
	"github.com/SscSPs/growth_estimator/internal/core/services"
	"github.com/SscSPs/growth_estimator/internal/handlers"
	"github.com/SscSPs/growth_estimator/internal/middleware"
	"github.com/SscSPs/growth_estimator/internal/platform/config"
	"github.com/SscSPs/growth_estimator/internal/repositories/database/pgsql"
	"github.com/SscSPs/growth_estimator/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Growth Estimator API
// @version 1.0
// @description Forward growth estimates that blend revenue CAGR with a five-forces intensity score.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// The database is optional; without it db:// sources are rejected.
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool, logger)

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Info("PGSQL_URL not set, database history sources are disabled")
	}

	router := history.NewRouter(history.RouterOptions{
		DownloadTimeout: cfg.DownloadTimeout,
		DownloadRetries: cfg.DownloadRetries,
		UserAgent:       cfg.UserAgent,
		Finder:          repos.HistoryFinder,
	})
	serviceContainer := services.NewServiceContainer(router)

	rateLimiter, err := middleware.NewInMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, API authentication is disabled")
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
