package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"toko/internal/config"
	"toko/internal/database"
	"toko/internal/handlers"
	"toko/internal/metrics"
	"toko/internal/middleware"
	"toko/internal/models"
	"toko/internal/repositories"
	"toko/internal/services"
	"toko/pkg/logger"
)

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	app, _, err := NewApp(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize application")
	}

	go func() {
		appLogger.WithField("port", cfg.AppPort).Info("Starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			appLogger.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.WithError(err).Error("Error during Fiber shutdown")
	}
	appLogger.Info("Server gracefully stopped")
}

// NewApp connects to the database and wires repositories, services and
// handlers into a Fiber app. The database is closed when the app shuts down.
func NewApp(cfg config.Config, appLogger *log.Logger) (*fiber.App, *services.AuthService, error) {
	entry := log.NewEntry(appLogger)

	db, err := database.Open(database.Options{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseDSN,
		Silent: appLogger.GetLevel() < log.DebugLevel,
	})
	if err != nil {
		return nil, nil, err
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	transactor := repositories.NewGORMTransactor(db)

	if cfg.SeedProducts {
		seedProducts(productRepo, entry)
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	orderMetrics := metrics.NewOrderMetrics(registry)

	// --- Services ---
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(transactor, orderRepo, orderMetrics, entry)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, entry)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService, entry)
	orderHandler := handlers.NewOrderHandler(orderService, entry)
	authHandler := handlers.NewAuthHandler(authService, entry)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(fiberlogger.New(fiberlogger.Config{Output: appLogger.Writer()}))

	app.Hooks().OnShutdown(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status, code := "healthy", fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status, code = "unhealthy", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)

	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService, entry))
	productHandler.RegisterRoutes(protectedRoutes)
	orderHandler.RegisterRoutes(protectedRoutes)

	return app, authService, nil
}

// seedProducts populates an empty catalog with a few demo products.
func seedProducts(repo repositories.ProductRepository, logger *log.Entry) {
	ctx := context.Background()
	existing, err := repo.GetAll(ctx)
	if err != nil {
		logger.WithError(err).Warn("Skipping product seed")
		return
	}
	if len(existing) > 0 {
		return
	}

	products := []models.Product{
		{ID: "prod-1", Name: "Laptop", Description: "High performance laptop", Price: decimal.RequireFromString("1200.00"), Stock: 10},
		{ID: "prod-2", Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.RequireFromString("75.00"), Stock: 25},
		{ID: "prod-3", Name: "Mouse", Description: "Ergonomic wireless mouse", Price: decimal.RequireFromString("25.00"), Stock: 50},
		{ID: "prod-4", Name: "Monitor", Description: "27 inch IPS monitor", Price: decimal.RequireFromString("300.00"), Stock: 15},
	}

	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			logger.WithError(err).WithField("product", products[i].Name).Warn("Error seeding product")
			continue
		}
		logger.WithField("product_id", products[i].ID).Debug("Seeded product")
	}
}
