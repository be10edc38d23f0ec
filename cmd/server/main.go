package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spender/internal/analytics"
	"spender/internal/config"
	"spender/internal/database"
	"spender/internal/handlers"
	custommiddleware "spender/internal/middleware"
	"spender/internal/models"
	"spender/internal/repositories"
	"spender/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// The achievement table ships with the binary, a broken entry is a
	// programming error and should stop the server before it serves traffic.
	if err := analytics.ValidateDefinitions(models.DefaultAchievements()); err != nil {
		log.Fatalf("Invalid achievement definitions: %v", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	expenseRepo := repositories.NewExpenseRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)

	metrics := services.NewPrometheusMetrics()
	insightsLogger := services.NewInsightsLogger(logger)
	expenseService := services.NewExpenseService(expenseRepo, metrics, logger)
	insightsService := services.NewInsightsService(expenseRepo, achievementRepo, metrics, insightsLogger)

	expenseHandler := handlers.NewExpenseHandler(expenseService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/users/:userId/expenses", expenseHandler.CreateExpense)
	api.GET("/users/:userId/expenses", expenseHandler.ListExpenses)
	api.PATCH("/expenses/:id/classification", expenseHandler.ClassifyExpense)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	api.GET("/users/:userId/insights", insightsHandler.GetInsights)
	api.GET("/users/:userId/insights/graphs", insightsHandler.GetGraphs)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	logger.Info("Server stopped")
}
