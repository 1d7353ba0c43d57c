package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"flowbit-analytics/internal/config"
	"flowbit-analytics/internal/database"
	"flowbit-analytics/internal/handlers"
	"flowbit-analytics/internal/middleware"
	"flowbit-analytics/internal/repositories"
	"flowbit-analytics/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; containerized deployments set real env vars
	_ = godotenv.Load()

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	e := buildServer(cfg, db)

	go func() {
		address := ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond,
		cfg.Security.RateLimitBurst,
	))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	registerRoutes(e, cfg, db)

	return e
}

func registerRoutes(e *echo.Echo, cfg *config.Config, db *database.DB) {
	vendorRepo := repositories.NewVendorRepository(db.DB)
	invoiceRepo := repositories.NewInvoiceRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	analyticsService := services.NewAnalyticsService(invoiceRepo, vendorRepo, metrics)
	invoiceService := services.NewInvoiceService(invoiceRepo, metrics)
	chatService := services.NewChatService(analyticsService, invoiceRepo)

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	chatHandler := handlers.NewChatHandler(chatService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/stats", analyticsHandler.GetStats)
	api.GET("/invoice-trends", analyticsHandler.GetInvoiceTrends)
	api.GET("/vendors/top10", analyticsHandler.GetTopVendors)
	api.GET("/category-spend", analyticsHandler.GetCategorySpend)
	api.GET("/cash-outflow", analyticsHandler.GetCashOutflow)
	api.GET("/invoices", invoiceHandler.ListInvoices)
	api.POST("/chat-with-data", chatHandler.ChatWithData)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(vendorRepo, invoiceRepo)
		api.POST("/dev/seed", devHandler.SeedData)
		slog.Info("development seed endpoint registered", "path", "/api/dev/seed")
	}
}
