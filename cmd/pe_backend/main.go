package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/printenterprise/pe_backend/internal/adapters/notification"
	"github.com/printenterprise/pe_backend/internal/core/services"
	"github.com/printenterprise/pe_backend/internal/handlers"
	"github.com/printenterprise/pe_backend/internal/middleware"
	"github.com/printenterprise/pe_backend/internal/platform/config"
	"github.com/printenterprise/pe_backend/internal/repositories/database/boltdb"
	"github.com/printenterprise/pe_backend/pkg/storage"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := storage.OpenBolt(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open ledger database", slog.String("path", cfg.DBPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("Error closing ledger database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Ledger database opened", slog.String("path", cfg.DBPath))

	repos := boltdb.NewRepositoryProvider(db)
	notifier := notification.NewWhatsAppDispatcher(cfg.NotifyGatewayURL)
	serviceContainer := services.NewServiceContainer(repos, notifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// The POS frontend is served from a different origin during development.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

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
