package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhamad-rafli/inventory-api/internal/api/handlers"
	"github.com/muhamad-rafli/inventory-api/internal/api/middleware"
	"github.com/muhamad-rafli/inventory-api/internal/cache"
	"github.com/muhamad-rafli/inventory-api/internal/config"
	"github.com/muhamad-rafli/inventory-api/internal/health"
	"github.com/muhamad-rafli/inventory-api/internal/metrics"
	repository "github.com/muhamad-rafli/inventory-api/internal/repositories"
	service "github.com/muhamad-rafli/inventory-api/internal/services"
	"github.com/muhamad-rafli/inventory-api/internal/storage"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer productCache.Close()

	// Upload storage
	store, err := storage.NewFileStore(cfg.Uploads.Dir)
	if err != nil {
		slog.Error("Error preparing upload directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	productRepo := repository.NewProductRepo(repos.DB)
	orderRepo := repository.NewOrderRepo(repos.DB)
	productService := service.NewProductService(productRepo, productCache)
	orderService := service.NewOrderService(orderRepo)
	productHandler := handlers.NewProductHandler(productService, store)
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error building health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Upload storage initialized", slog.String("env", cfg.Env), slog.String("dir", store.Dir()))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/products/create", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/products/show/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/products/update/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /api/products/delete/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("GET /api/orders", orderHandler.ListOrders())
	routerMux.HandleFunc("POST /api/orders/create", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/orders/show/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("PUT /api/orders/update/{id}", orderHandler.UpdateOrder())
	routerMux.HandleFunc("DELETE /api/orders/delete/{id}", orderHandler.DeleteOrder())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /public/products/", http.StripPrefix("/public/products/", http.FileServer(http.Dir(store.Dir()))))
	routerMux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Muhamad Rafli API"))
	})

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = middleware.CORS(handler)
	handler = metrics.Middleware(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
