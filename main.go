package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/phamanh/retail-store-backend/internal/config"
	httpdelivery "github.com/phamanh/retail-store-backend/internal/delivery/http"
	"github.com/phamanh/retail-store-backend/internal/messaging/kafka"
	"github.com/phamanh/retail-store-backend/internal/repository/postgres"
	redisrepo "github.com/phamanh/retail-store-backend/internal/repository/redis"
	"github.com/phamanh/retail-store-backend/internal/service"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg := config.Load()

	// --- Database ---
	db, err := postgres.InitDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Seed(db); err != nil {
		slog.Error("Failed to seed catalog", "err", err)
		os.Exit(1)
	}

	// --- Redis (carts) ---
	redisClient, err := redisrepo.NewClient(cfg.RedisAddr)
	if err != nil {
		slog.Error("Failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// --- Repositories ---
	categoryRepo := postgres.NewCategoryRepository(db)
	supplierRepo := postgres.NewSupplierRepository(db)
	productRepo := postgres.NewProductRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	cartRepo := redisrepo.NewCartRepository(redisClient)

	// --- Services ---
	publisher := kafka.NewPublisher(cfg.KafkaBrokers)
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.JWTTTL, customerRepo, employeeRepo)
	orderSvc := service.NewOrderService(orderRepo, publisher)
	cartSvc := service.NewCartService(cartRepo, productRepo)

	// --- HTTP ---
	handler := httpdelivery.NewHandler(
		categoryRepo, supplierRepo, productRepo,
		customerRepo, employeeRepo, orderRepo,
		authSvc, orderSvc, cartSvc,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpdelivery.EnableCORS(mux),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}
