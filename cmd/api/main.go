// Package main is the entry point for the Transaction Categorizer API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/transaction-categorizer/backend/config"
	"github.com/transaction-categorizer/backend/internal/application/usecase/transaction"
	"github.com/transaction-categorizer/backend/internal/infra/db"
	"github.com/transaction-categorizer/backend/internal/infra/server/router"
	"github.com/transaction-categorizer/backend/internal/integration/adapters"
	"github.com/transaction-categorizer/backend/internal/integration/cache"
	"github.com/transaction-categorizer/backend/internal/integration/entrypoint/controller"
	"github.com/transaction-categorizer/backend/internal/integration/persistence"
	"github.com/transaction-categorizer/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Transaction Categorizer API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection. The service cannot ingest or serve
	// queries without its store, so a connection failure is fatal.
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.TransactionModel{},
		&model.CategoryMappingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	mappingRepo := persistence.NewCategoryMappingRepository(database.DB())

	// Put the Redis hot tier in front of the durable mapping store. Redis
	// outages degrade to the database, so a bad URL is only a warning.
	mappingStore := mappingRepo
	if redisOpts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, running without the mapping hot cache", "error", err)
	} else {
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()
		mappingStore = cache.NewRedisMappingCache(mappingRepo, redisClient, cfg.Redis.MappingTTL)
	}

	// Create the classifier. A missing API key is tolerated: every call
	// fails open to Miscellaneous instead of blocking ingestion.
	if cfg.Gemini.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, all uncached descriptions will resolve to Miscellaneous")
	}
	classifier := adapters.NewGeminiClassifier(cfg.Gemini.APIKey, cfg.Gemini.Model, mappingStore)

	// Create use cases
	saveUseCase := transaction.NewSaveTransactionsUseCase(transactionRepo, classifier)
	listUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getUseCase := transaction.NewGetTransactionUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	transactionController := controller.NewTransactionController(saveUseCase, listUseCase, getUseCase)

	// Setup router
	r := router.NewRouter(healthController, transactionController)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
